package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReadJobDescription reads a job description from a local .txt, .md, .html,
// or .htm file and returns its cleaned text. HTML files are reduced to their
// visible text before cleaning.
func ReadJobDescription(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("job description not found: %w", err)
		}
		return "", fmt.Errorf("failed to read job description: %w", err)
	}

	text := string(content)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = extractHTMLText(text)
		if err != nil {
			return "", fmt.Errorf("failed to parse job description HTML: %w", err)
		}
	case ".txt", ".md", "":
		// Plain text as-is.
	default:
		return "", fmt.Errorf("unsupported job description format %q (use .txt, .md, or .html)", filepath.Ext(path))
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("job description %s is empty", path)
	}
	return cleaned, nil
}

// extractHTMLText pulls the visible text out of an HTML document, one line
// per block element so CleanText can normalize the result.
func extractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	root.Find("h1, h2, h3, h4, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; containers repeat their children's text.
		if s.Children().Length() > 0 && s.Is("div") {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if s.Is("li") {
			sb.WriteString("- ")
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	if sb.Len() == 0 {
		return strings.TrimSpace(root.Text()), nil
	}
	return sb.String(), nil
}
