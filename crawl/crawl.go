// Package crawl turns a directory of HTML documents into a corpus.Corpus:
// each .html file becomes a page named after the file, and every href it
// contains that points at another file of the same directory becomes a
// directed link. Links to the page itself and to targets outside the
// directory are dropped, so pages whose every href points elsewhere come
// out dangling.
//
// This is the graph-ingestion collaborator of the estimators; the pagerank
// package itself never touches the filesystem.
package crawl

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pagewalk/pagewalk/corpus"
)

// hrefPattern extracts the href attribute value of anchor tags.
var hrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Crawl parses every .html file directly inside dir and returns the corpus
// of pages and their in-directory links. Non-HTML entries and
// subdirectories are skipped. Returns a wrapped filesystem error if the
// directory or any of its HTML files cannot be read.
func Crawl(dir string) (*corpus.Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("crawl: reading %q: %w", dir, err)
	}

	// First pass: collect every page and the raw href targets it mentions.
	// Link filtering needs the complete page set, so it waits for pass two.
	targets := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		page := entry.Name()
		contents, err := os.ReadFile(filepath.Join(dir, page))
		if err != nil {
			return nil, fmt.Errorf("crawl: reading %q: %w", page, err)
		}
		targets[page] = extractLinks(string(contents), page)
	}

	// Second pass: keep only links whose target is itself a page of the
	// corpus; everything else (external URLs, missing files) is dropped.
	c := corpus.New()
	for page := range targets {
		if err := c.AddPage(page); err != nil {
			return nil, err
		}
	}
	for page, links := range targets {
		for _, link := range links {
			if _, ok := targets[link]; !ok {
				continue
			}
			if err := c.AddLink(page, link); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// extractLinks returns the href values found in contents, minus any
// self-reference to page. Duplicates are preserved here; the corpus
// collapses them on insertion.
func extractLinks(contents, page string) []string {
	matches := hrefPattern.FindAllStringSubmatch(contents, -1)
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] == page {
			continue
		}
		links = append(links, m[1])
	}

	return links
}
