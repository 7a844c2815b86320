// Package builder assembles deterministic corpus fixtures from composable
// topology constructors. It exists for tests, benchmarks and examples that
// need reproducible link graphs without crawling real documents.
//
// Design contract:
//   - One orchestrator: Build(cons...). Creates the corpus, runs cons in order.
//   - Constructors validate parameters early and return sentinel errors; no panics.
//   - Determinism: the same constructors in the same order (including any
//     seed) produce an identical corpus.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/pagewalk/pagewalk/corpus"
)

// Sentinel errors returned by topology constructors.
var (
	// ErrTooFewPages indicates a topology was requested with fewer pages
	// than its shape requires.
	ErrTooFewPages = errors.New("builder: too few pages for topology")

	// ErrBadProbability indicates a link probability outside [0,1].
	ErrBadProbability = errors.New("builder: link probability must be in [0,1]")

	// ErrNilConstructor indicates a nil Constructor was passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies a deterministic mutation to a corpus under
// construction. Constructors must validate their parameters and return
// sentinel errors instead of panicking.
type Constructor func(c *corpus.Corpus) error

// Build creates a fresh corpus and applies all constructors in order.
// The first constructor error aborts the build; no partial cleanup is
// attempted. Composing constructors that reuse page IDs merges their links.
func Build(cons ...Constructor) (*corpus.Corpus, error) {
	c := corpus.New()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilConstructor, i)
		}
		if err := fn(c); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	return c, nil
}

// pageID names the i-th generated page. All topology constructors share
// this scheme so composed fixtures overlap predictably.
func pageID(i int) string { return fmt.Sprintf("p%d", i) }

// Chain links n pages in a line: p0→p1→…→p(n−1). The last page is a
// dangling sink. Requires n ≥ 2.
func Chain(n int) Constructor {
	return func(c *corpus.Corpus) error {
		if n < 2 {
			return fmt.Errorf("%w: Chain needs n ≥ 2, got %d", ErrTooFewPages, n)
		}
		for i := 0; i < n-1; i++ {
			if err := c.AddLink(pageID(i), pageID(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle links n pages in a ring: p0→p1→…→p(n−1)→p0. No dangling pages.
// Requires n ≥ 2.
func Cycle(n int) Constructor {
	return func(c *corpus.Corpus) error {
		if n < 2 {
			return fmt.Errorf("%w: Cycle needs n ≥ 2, got %d", ErrTooFewPages, n)
		}
		for i := 0; i < n; i++ {
			if err := c.AddLink(pageID(i), pageID((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete links every page to every other page (no self-links).
// Requires n ≥ 2.
func Complete(n int) Constructor {
	return func(c *corpus.Corpus) error {
		if n < 2 {
			return fmt.Errorf("%w: Complete needs n ≥ 2, got %d", ErrTooFewPages, n)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := c.AddLink(pageID(i), pageID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star links n leaf pages to a single dangling hub named "center".
// Requires n ≥ 1.
func Star(n int) Constructor {
	return func(c *corpus.Corpus) error {
		if n < 1 {
			return fmt.Errorf("%w: Star needs n ≥ 1, got %d", ErrTooFewPages, n)
		}
		if err := c.AddPage("center"); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := c.AddLink(pageID(i), "center"); err != nil {
				return err
			}
		}

		return nil
	}
}

// Dangling adds n isolated pages with no links at all. Requires n ≥ 1.
func Dangling(n int) Constructor {
	return func(c *corpus.Corpus) error {
		if n < 1 {
			return fmt.Errorf("%w: Dangling needs n ≥ 1, got %d", ErrTooFewPages, n)
		}
		for i := 0; i < n; i++ {
			if err := c.AddPage(pageID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomSparse adds n pages and links each ordered pair independently with
// probability p, driven by a private generator seeded with seed. Identical
// arguments always yield an identical corpus. Requires n ≥ 1 and p ∈ [0,1].
func RandomSparse(n int, p float64, seed int64) Constructor {
	return func(c *corpus.Corpus) error {
		if n < 1 {
			return fmt.Errorf("%w: RandomSparse needs n ≥ 1, got %d", ErrTooFewPages, n)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: got %v", ErrBadProbability, p)
		}
		rnd := rand.New(rand.NewSource(seed))
		for i := 0; i < n; i++ {
			if err := c.AddPage(pageID(i)); err != nil {
				return err
			}
		}
		// Fixed pair order keeps the generator stream, and therefore the
		// resulting topology, stable across runs.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if rnd.Float64() < p {
					if err := c.AddLink(pageID(i), pageID(j)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
