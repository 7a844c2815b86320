package pagerank

import (
	"fmt"

	"github.com/pagewalk/pagewalk/corpus"
)

// Transition computes the one-step transition probability distribution of
// the random surfer standing on page: with probability d it follows one of
// the page's outbound links uniformly, and with probability 1−d it jumps to
// a uniformly random page of the corpus. A dangling page (no outbound
// links) is treated as linking to every page, itself included, making the
// distribution uniform.
//
// The result covers every page of the corpus and sums to 1.0 exactly under
// exact arithmetic; floating-point drift stays below 1e-9 per call.
//
// Errors:
//   - ErrNilCorpus    if c is nil.
//   - ErrBadDamping   if WithDamping received a value outside (0,1).
//   - ErrPageNotFound if page is not part of the corpus (caller contract
//     violation; no partial result is returned).
//
// Pure function of its inputs; no side effects.
// Complexity: O(N + L) time, O(N) space, with N pages and L links of page.
func Transition(c *corpus.Corpus, page string, opts ...Option) (Distribution, error) {
	// 1) Validate corpus presence before touching options.
	if c == nil {
		return nil, ErrNilCorpus
	}

	// 2) Build options and surface any recorded violation immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Validate the page is part of the corpus.
	links, err := c.Links(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, page)
	}

	return transition(c.Pages(), links, o.Damping), nil
}

// transition builds the distribution from a pre-fetched page list and link
// set. Shared by Transition and the sample estimator so the random walk
// does not re-validate the corpus at every step.
//
// Assumes pages is non-empty and links ⊆ pages.
func transition(pages, links []string, damping float64) Distribution {
	n := float64(len(pages))
	dist := make(Distribution, len(pages))

	// Dangling page: uniform over the whole corpus, self included.
	// (1−d)/N + d/N collapses to exactly 1/N.
	if len(links) == 0 {
		for _, p := range pages {
			dist[p] = 1.0 / n
		}

		return dist
	}

	// Random-jump mass goes to every page; link-follow mass is split
	// uniformly across the out-link set. Total: (1−d) + d = 1.
	jump := (1.0 - damping) / n
	follow := damping / float64(len(links))
	for _, p := range pages {
		dist[p] = jump
	}
	for _, l := range links {
		dist[l] += follow
	}

	return dist
}
