package crawl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagewalk/pagewalk/crawl"
)

// writeCorpusDir materializes the given page→HTML mapping in a temp dir.
func writeCorpusDir(t *testing.T, pages map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
	}

	return dir
}

func TestCrawl_LinksBetweenPages(t *testing.T) {
	dir := writeCorpusDir(t, map[string]string{
		"1.html": `<html><body><a href="2.html">two</a></body></html>`,
		"2.html": `<a href="1.html">one</a> <a href="3.html">three</a>`,
		"3.html": `<a href="2.html">two</a>`,
	})

	c, err := crawl.Crawl(dir)
	require.NoError(t, err)

	require.Equal(t, []string{"1.html", "2.html", "3.html"}, c.Pages())
	require.True(t, c.HasLink("1.html", "2.html"))
	require.True(t, c.HasLink("2.html", "1.html"))
	require.True(t, c.HasLink("2.html", "3.html"))
	require.False(t, c.HasLink("3.html", "1.html"))
}

func TestCrawl_ExternalLinksDropped(t *testing.T) {
	dir := writeCorpusDir(t, map[string]string{
		"a.html": `<a href="https://example.com/">x</a> <a href="missing.html">y</a>`,
		"b.html": `<a href="a.html">a</a>`,
	})

	c, err := crawl.Crawl(dir)
	require.NoError(t, err)

	// a.html links only outside the corpus, so it must come out dangling.
	deg, err := c.OutDegree("a.html")
	require.NoError(t, err)
	require.Zero(t, deg)
	require.False(t, c.HasPage("missing.html"))
}

func TestCrawl_SelfLinksDropped(t *testing.T) {
	dir := writeCorpusDir(t, map[string]string{
		"a.html": `<a href="a.html">me</a> <a href="b.html">b</a>`,
		"b.html": ``,
	})

	c, err := crawl.Crawl(dir)
	require.NoError(t, err)
	require.False(t, c.HasLink("a.html", "a.html"))
	require.True(t, c.HasLink("a.html", "b.html"))
}

func TestCrawl_IgnoresNonHTML(t *testing.T) {
	dir := writeCorpusDir(t, map[string]string{
		"page.html": `<a href="notes.txt">n</a>`,
		"notes.txt": `not a page`,
		"style.css": `a { color: red }`,
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	c, err := crawl.Crawl(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"page.html"}, c.Pages())
}

func TestCrawl_AnchorsWithExtraAttributes(t *testing.T) {
	dir := writeCorpusDir(t, map[string]string{
		"a.html": `<a class="nav" id="x" href="b.html">b</a>`,
		"b.html": ``,
	})

	c, err := crawl.Crawl(dir)
	require.NoError(t, err)
	require.True(t, c.HasLink("a.html", "b.html"))
}

func TestCrawl_MissingDirectory(t *testing.T) {
	_, err := crawl.Crawl(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
