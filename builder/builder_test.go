package builder_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagewalk/pagewalk/builder"
	"github.com/pagewalk/pagewalk/corpus"
)

func TestBuild_Chain(t *testing.T) {
	c, err := builder.Build(builder.Chain(3))
	require.NoError(t, err)

	require.Equal(t, []string{"p0", "p1", "p2"}, c.Pages())
	require.True(t, c.HasLink("p0", "p1"))
	require.True(t, c.HasLink("p1", "p2"))

	// The sink must be dangling.
	deg, err := c.OutDegree("p2")
	require.NoError(t, err)
	require.Zero(t, deg)
}

func TestBuild_Cycle(t *testing.T) {
	c, err := builder.Build(builder.Cycle(4))
	require.NoError(t, err)

	require.True(t, c.HasLink("p3", "p0"), "ring must close")
	for _, p := range c.Pages() {
		deg, err := c.OutDegree(p)
		require.NoError(t, err)
		require.Equal(t, 1, deg, "every ring page has exactly one out-link")
	}
}

func TestBuild_Complete(t *testing.T) {
	const n = 4
	c, err := builder.Build(builder.Complete(n))
	require.NoError(t, err)

	for _, p := range c.Pages() {
		deg, err := c.OutDegree(p)
		require.NoError(t, err)
		require.Equal(t, n-1, deg)
	}
}

func TestBuild_Star(t *testing.T) {
	c, err := builder.Build(builder.Star(3))
	require.NoError(t, err)

	require.Equal(t, []string{"center", "p0", "p1", "p2"}, c.Pages())
	deg, err := c.OutDegree("center")
	require.NoError(t, err)
	require.Zero(t, deg, "hub must be dangling")
	require.True(t, c.HasLink("p0", "center"))
}

func TestBuild_Dangling(t *testing.T) {
	c, err := builder.Build(builder.Dangling(2))
	require.NoError(t, err)
	require.Equal(t, 2, c.PageCount())
	for _, p := range c.Pages() {
		deg, _ := c.OutDegree(p)
		require.Zero(t, deg)
	}
}

func TestBuild_RandomSparseDeterministic(t *testing.T) {
	a, err := builder.Build(builder.RandomSparse(12, 0.3, 42))
	require.NoError(t, err)
	b, err := builder.Build(builder.RandomSparse(12, 0.3, 42))
	require.NoError(t, err)

	require.Equal(t, a.Pages(), b.Pages())
	for _, p := range a.Pages() {
		la, _ := a.Links(p)
		lb, _ := b.Links(p)
		require.True(t, reflect.DeepEqual(la, lb), "links of %s differ across identical builds", p)
	}
}

func TestBuild_Compose(t *testing.T) {
	// Cycle then Star over overlapping IDs: links merge on shared pages.
	c, err := builder.Build(builder.Cycle(3), builder.Star(2))
	require.NoError(t, err)
	require.True(t, c.HasLink("p0", "p1"))
	require.True(t, c.HasLink("p0", "center"))
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(builder.Chain(1))
	require.ErrorIs(t, err, builder.ErrTooFewPages)

	_, err = builder.Build(builder.Cycle(0))
	require.ErrorIs(t, err, builder.ErrTooFewPages)

	_, err = builder.Build(builder.RandomSparse(3, 1.5, 1))
	require.ErrorIs(t, err, builder.ErrBadProbability)

	_, err = builder.Build(nil)
	require.ErrorIs(t, err, builder.ErrNilConstructor)
}

func TestBuild_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	_, err := builder.Build(
		func(*corpus.Corpus) error { return boom },
		func(*corpus.Corpus) error { ran = true; return nil },
	)
	require.ErrorIs(t, err, boom)
	require.False(t, ran, "constructors after a failure must not run")
}
