package pagerank

import (
	"math"

	"github.com/pagewalk/pagewalk/corpus"
)

// Iterate computes the stationary distribution by direct fixed-point
// iteration on the PageRank recurrence
//
//	PR(p) = (1−d)/N + d · Σ_{q links to p} PR(q)/OutDegree(q)
//
// with dangling pages contributing PR(q)/N to every page (the same
// convention the transition model applies). Every pass computes all new
// ranks from a frozen snapshot of the previous pass; ranks never mix stale
// and updated values. The iteration stops when every page's rank changed by
// strictly less than Epsilon.
//
// Convergence is guaranteed: the random-jump and dangling terms make the
// chain irreducible and aperiodic. WithMaxIterations adds a defensive cap;
// hitting it before the threshold yields ErrNoConvergence with no partial
// result.
//
// Errors:
//   - ErrNilCorpus     if c is nil.
//   - ErrEmptyCorpus   if the corpus has no pages.
//   - ErrBadEpsilon / ErrBadDamping / ErrBadMaxIterations for invalid options.
//   - ErrNoConvergence if a configured cap was reached first.
//
// Pure function; no shared state across calls.
// Complexity: O(K·(N + E)) time for K passes over N pages and E links;
// O(N + E) space.
func Iterate(c *corpus.Corpus, opts ...Option) (Distribution, error) {
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

	// 2) Build the solver and run it to convergence.
	s := newSolver(c, o)
	s.init()

	return s.run()
}

// solverState models the iteration lifecycle explicitly:
// Initialized → Iterating → Converged, with Iterating→Iterating applying
// one synchronous snapshot-read/batch-write pass guarded by the
// not-yet-converged predicate.
type solverState int

const (
	stateInitialized solverState = iota
	stateIterating
	stateConverged
)

// solver holds the mutable state of one Iterate execution.
type solver struct {
	opts Options

	pages    []string            // frozen page order
	incoming map[string][]string // page → pages linking to it
	outDeg   map[string]int      // page → out-degree
	dangling []string            // pages with no outbound links

	ranks Distribution // previous-pass snapshot
	next  Distribution // batch-write table for the current pass

	state  solverState
	passes int
}

// newSolver indexes the corpus once: reverse adjacency for the recurrence
// sum, out-degrees for the per-link share, and the dangling set for the
// uniform redistribution term.
func newSolver(c *corpus.Corpus, o Options) *solver {
	pages := c.Pages()
	s := &solver{
		opts:     o,
		pages:    pages,
		incoming: make(map[string][]string, len(pages)),
		outDeg:   make(map[string]int, len(pages)),
		ranks:    make(Distribution, len(pages)),
		next:     make(Distribution, len(pages)),
		state:    stateInitialized,
	}
	for _, q := range pages {
		links, _ := c.Links(q) // q comes from Pages(); lookup cannot fail
		s.outDeg[q] = len(links)
		if len(links) == 0 {
			s.dangling = append(s.dangling, q)
			continue
		}
		for _, p := range links {
			s.incoming[p] = append(s.incoming[p], q)
		}
	}

	return s
}

// init seeds the rank table: uniform 1/N, or the caller-provided initial
// ranks with 1/N filling any missing page.
func (s *solver) init() {
	uniform := 1.0 / float64(len(s.pages))
	for _, p := range s.pages {
		s.ranks[p] = uniform
		if s.opts.InitialRanks != nil {
			if v, ok := s.opts.InitialRanks[p]; ok {
				s.ranks[p] = v
			}
		}
	}
	s.state = stateIterating
}

// run applies passes until the converged predicate holds or the optional
// cap is exhausted. Returns the converged distribution.
func (s *solver) run() (Distribution, error) {
	for s.state == stateIterating {
		if s.opts.MaxIterations > 0 && s.passes >= s.opts.MaxIterations {
			return nil, ErrNoConvergence
		}
		s.pass()
	}

	return s.ranks, nil
}

// pass executes one synchronous update: read only the frozen snapshot,
// write only the disjoint next table, then swap. Transitions to Converged
// when the maximum per-page delta drops strictly below Epsilon.
func (s *solver) pass() {
	n := float64(len(s.pages))
	base := (1.0 - s.opts.Damping) / n

	// Dangling pages distribute their whole rank uniformly; computing the
	// shared term once keeps the pass linear in pages plus links.
	var danglingSum float64
	for _, q := range s.dangling {
		danglingSum += s.ranks[q]
	}
	share := s.opts.Damping * danglingSum / n

	maxDelta := 0.0
	for _, p := range s.pages {
		var sum float64
		for _, q := range s.incoming[p] {
			sum += s.ranks[q] / float64(s.outDeg[q])
		}
		s.next[p] = base + s.opts.Damping*sum + share

		if delta := math.Abs(s.next[p] - s.ranks[p]); delta > maxDelta {
			maxDelta = delta
		}
	}

	// Swap the tables; the old snapshot becomes the next scratch table.
	s.ranks, s.next = s.next, s.ranks
	s.passes++
	s.opts.OnIteration(s.passes, maxDelta)

	if maxDelta < s.opts.Epsilon {
		s.state = stateConverged
	}
}
