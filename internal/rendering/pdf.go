package rendering

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// pdfTimeout bounds the whole headless-Chrome print, including startup.
const pdfTimeout = 60 * time.Second

// US letter dimensions in inches for PrintToPDF.
const (
	pageWidthIn  = 8.5
	pageHeightIn = 11.0
	pageMarginIn = 0.0 // the template's @page rule supplies margins
)

// PrintPDF renders an HTML document to a PDF file using headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
func PrintPDF(ctx context.Context, html, outPath string) error {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, pdfTimeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html;charset=utf-8,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(pageWidthIn).
				WithPaperHeight(pageHeightIn).
				WithMarginTop(pageMarginIn).
				WithMarginBottom(pageMarginIn).
				WithMarginLeft(pageMarginIn).
				WithMarginRight(pageMarginIn).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return &RenderError{Message: "headless PDF print failed", Cause: err}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to create output directory for %s", outPath), Cause: err}
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to write %s", outPath), Cause: err}
	}
	return nil
}
