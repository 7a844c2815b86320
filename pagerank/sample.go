package pagerank

import (
	"github.com/pagewalk/pagewalk/corpus"
)

// Sample estimates the stationary distribution by simulating a single long
// random walk of SampleCount steps: the first page is chosen uniformly at
// random, every subsequent page is drawn from the transition model of the
// previous one, and each page's final value is its visit count divided by
// the total sample count.
//
// The walk is one unbroken Markov chain; there are no resets between
// samples. Each draw is weighted exactly by the transition probabilities,
// not approximated by a uniform choice over linked pages.
//
// The output is stochastic: runs with different randomness sources differ
// numerically and converge in expectation to Iterate's result as the
// sample count grows. Inject a seeded Source via WithRand for reproducible
// walks.
//
// Errors:
//   - ErrNilCorpus      if c is nil.
//   - ErrEmptyCorpus    if the corpus has no pages.
//   - ErrBadSampleCount / ErrBadDamping for invalid options.
//
// Complexity: O(n·(N + L̄)) time for n samples over N pages with mean
// out-degree L̄; O(N) space.
func Sample(c *corpus.Corpus, opts ...Option) (Distribution, error) {
	// 1) Validate inputs in contract order.
	if c == nil {
		return nil, ErrNilCorpus
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if c.PageCount() == 0 {
		return nil, ErrEmptyCorpus
	}

	// 2) Freeze the page order once; the walk and the weighted draws both
	//    iterate it, keeping the chain reproducible for a seeded source.
	pages := c.Pages()
	rnd := o.source()

	// 3) Uniform initial page; it counts as the first sample.
	tally := make(map[string]int, len(pages))
	current := pages[rnd.Intn(len(pages))]
	tally[current]++

	// 4) Draw the remaining n−1 samples from successive transition models.
	for i := 1; i < o.SampleCount; i++ {
		links, err := c.Links(current)
		if err != nil {
			// Unreachable for a well-formed corpus: current always comes
			// from pages. Propagate rather than mask a broken invariant.
			return nil, err
		}
		current = draw(pages, transition(pages, links, o.Damping), rnd)
		tally[current]++
	}

	// 5) Normalize tallies into the visit-frequency distribution.
	dist := make(Distribution, len(pages))
	total := float64(o.SampleCount)
	for _, p := range pages {
		dist[p] = float64(tally[p]) / total
	}

	return dist, nil
}

// draw performs a weighted random choice over pages proportional to the
// given distribution, by inverse-CDF scan in the frozen page order.
// Falls back to the last page if cumulative rounding leaves the uniform
// variate above the final cumulative sum.
func draw(pages []string, dist Distribution, rnd Source) string {
	r := rnd.Float64()
	var cum float64
	for _, p := range pages {
		cum += dist[p]
		if r < cum {
			return p
		}
	}

	return pages[len(pages)-1]
}
