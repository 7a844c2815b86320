package corpus

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for corpus construction and queries.
var (
	// ErrEmptyPageID indicates that a page or link endpoint had an empty ID.
	ErrEmptyPageID = errors.New("corpus: page ID is empty")

	// ErrPageNotFound indicates a query referenced a non-existent page.
	ErrPageNotFound = errors.New("corpus: page not found")
)

// Corpus is a directed graph of pages and their outbound links.
// The zero value is not usable; construct with New or FromMap.
type Corpus struct {
	// links maps page ID → set of outbound link targets.
	// Every target is itself a key of the map (closure invariant).
	links map[string]map[string]struct{}
}

// New returns an empty Corpus ready for AddPage/AddLink calls.
func New() *Corpus {
	return &Corpus{links: make(map[string]map[string]struct{})}
}

// FromMap builds a Corpus from a plain page→out-links mapping.
// Targets absent from the key set are registered as dangling pages;
// self-links are dropped. Returns ErrEmptyPageID on any empty identifier.
func FromMap(pages map[string][]string) (*Corpus, error) {
	c := New()
	for page, targets := range pages {
		if err := c.AddPage(page); err != nil {
			return nil, err
		}
		for _, target := range targets {
			if err := c.AddLink(page, target); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// AddPage inserts a page if missing (idempotent).
// Returns ErrEmptyPageID if id is empty.
func (c *Corpus) AddPage(id string) error {
	if id == "" {
		return ErrEmptyPageID
	}
	if _, ok := c.links[id]; !ok {
		c.links[id] = make(map[string]struct{})
	}

	return nil
}

// AddLink inserts a directed link from→to, registering both endpoints as
// pages. Self-links are ignored; duplicate links collapse. Returns
// ErrEmptyPageID if either endpoint is empty.
func (c *Corpus) AddLink(from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: link %q→%q", ErrEmptyPageID, from, to)
	}
	if err := c.AddPage(from); err != nil {
		return err
	}
	if err := c.AddPage(to); err != nil {
		return err
	}
	// A page never links to itself; the estimators rely on dangling pages
	// being exactly the pages with an empty out-link set.
	if from == to {
		return nil
	}
	c.links[from][to] = struct{}{}

	return nil
}

// HasPage reports whether id is a page of the corpus.
func (c *Corpus) HasPage(id string) bool {
	_, ok := c.links[id]

	return ok
}

// HasLink reports whether a directed link from→to exists.
func (c *Corpus) HasLink(from, to string) bool {
	targets, ok := c.links[from]
	if !ok {
		return false
	}
	_, ok = targets[to]

	return ok
}

// Pages returns all page IDs sorted lexicographically ascending.
func (c *Corpus) Pages() []string {
	ids := make([]string, 0, len(c.links))
	for id := range c.links {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// PageCount returns the number of pages in the corpus.
func (c *Corpus) PageCount() int { return len(c.links) }

// Links returns the outbound link targets of id, sorted lexicographically
// ascending. The returned slice is a copy; mutating it does not affect the
// corpus. Returns ErrPageNotFound if id is not a page.
func (c *Corpus) Links(id string) ([]string, error) {
	targets, ok := c.links[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, id)
	}
	out := make([]string, 0, len(targets))
	for t := range targets {
		out = append(out, t)
	}
	sort.Strings(out)

	return out, nil
}

// OutDegree returns the number of outbound links of id.
// A return of 0 identifies a dangling page.
// Returns ErrPageNotFound if id is not a page.
func (c *Corpus) OutDegree(id string) (int, error) {
	targets, ok := c.links[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPageNotFound, id)
	}

	return len(targets), nil
}

// Clone returns an independent deep copy of the corpus.
func (c *Corpus) Clone() *Corpus {
	cp := &Corpus{links: make(map[string]map[string]struct{}, len(c.links))}
	for page, targets := range c.links {
		set := make(map[string]struct{}, len(targets))
		for t := range targets {
			set[t] = struct{}{}
		}
		cp.links[page] = set
	}

	return cp
}
