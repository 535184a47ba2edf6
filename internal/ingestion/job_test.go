package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJobDescription_PlainText(t *testing.T) {
	path := writeJobFile(t, "job.txt", "Senior Engineer\r\n\r\n\r\n\r\nBuild   distributed   systems.")

	text, err := ReadJobDescription(path)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer\n\nBuild distributed systems.", text)
}

func TestReadJobDescription_Markdown(t *testing.T) {
	path := writeJobFile(t, "job.md", "# Staff Engineer\n\n- Own the data platform\n- Mentor engineers")

	text, err := ReadJobDescription(path)
	require.NoError(t, err)
	assert.Contains(t, text, "# Staff Engineer")
	assert.Contains(t, text, "- Own the data platform")
}

func TestReadJobDescription_HTML(t *testing.T) {
	html := `<html><head><style>p { color: red }</style>
<script>track();</script></head>
<body>
  <nav>Jobs | About | Careers</nav>
  <h1>Platform Engineer</h1>
  <p>Acme builds infrastructure for robots.</p>
  <ul><li>Go experience required</li><li>Kubernetes a plus</li></ul>
  <footer>© Acme</footer>
</body></html>`
	path := writeJobFile(t, "job.html", html)

	text, err := ReadJobDescription(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Platform Engineer")
	assert.Contains(t, text, "Acme builds infrastructure for robots.")
	assert.Contains(t, text, "- Go experience required")
	// Chrome, script, and style content never reaches the analyzer.
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Jobs | About")
	assert.NotContains(t, text, "© Acme")
}

func TestReadJobDescription_UnsupportedExtension(t *testing.T) {
	path := writeJobFile(t, "job.pdf", "%PDF-1.4")

	_, err := ReadJobDescription(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported job description format")
}

func TestReadJobDescription_MissingFile(t *testing.T) {
	_, err := ReadJobDescription(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadJobDescription_EmptyFile(t *testing.T) {
	path := writeJobFile(t, "job.txt", "   \n  ")

	_, err := ReadJobDescription(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}
