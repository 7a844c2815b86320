package pagerank_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/pagewalk/pagewalk/builder"
	"github.com/pagewalk/pagewalk/pagerank"
)

// TestEstimatorInvariants property-checks the numerical contracts over
// randomly generated corpora: these must hold for every well-formed graph
// and damping factor, not just the hand-built fixtures.
func TestEstimatorInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based tests in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	// Property 1: the transition model is a probability distribution from
	// every page (sum drift below 1e-9).
	properties.Property("transition sums to one from every page", prop.ForAll(
		func(n int, p float64, seed int64, damping float64) bool {
			c, err := builder.Build(builder.RandomSparse(n, p, seed))
			if err != nil {
				return false
			}
			for _, page := range c.Pages() {
				dist, err := pagerank.Transition(c, page, pagerank.WithDamping(damping))
				if err != nil {
					return false
				}
				if math.Abs(dist.Sum()-1.0) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 15),
		gen.Float64Range(0, 1),
		gen.Int64(),
		gen.Float64Range(0.05, 0.95),
	))

	// Property 2: the fixed-point estimator returns mass summing to one
	// and every rank non-negative.
	properties.Property("iterate returns a well-formed distribution", prop.ForAll(
		func(n int, p float64, seed int64, damping float64) bool {
			c, err := builder.Build(builder.RandomSparse(n, p, seed))
			if err != nil {
				return false
			}
			dist, err := pagerank.Iterate(c, pagerank.WithDamping(damping))
			if err != nil {
				return false
			}
			if math.Abs(dist.Sum()-1.0) > 1e-6 {
				return false
			}
			for _, v := range dist {
				if v < 0 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 15),
		gen.Float64Range(0, 1),
		gen.Int64(),
		gen.Float64Range(0.05, 0.95),
	))

	// Property 3: every rank is at least the random-jump floor (1−d)/N.
	properties.Property("iterate respects the random-jump floor", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			c, err := builder.Build(builder.RandomSparse(n, p, seed))
			if err != nil {
				return false
			}
			dist, err := pagerank.Iterate(c)
			if err != nil {
				return false
			}
			floor := (1.0-pagerank.DefaultDamping)/float64(c.PageCount()) - 1e-9
			for _, v := range dist {
				if v < floor {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 15),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
