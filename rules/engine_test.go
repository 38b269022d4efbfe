package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var confirm = Terms{"yes"}

type acc struct {
	Label string
	Hits  []string
}

func newEngine(p Policy) *Engine[acc] {
	return &Engine[acc]{
		Policy:  p,
		Default: func() acc { return acc{Label: "none", Hits: []string{}} },
		Rules: []Rule[acc]{
			{
				Topic:    "alpha",
				Triggers: Terms{"alpha"},
				Apply: func(text string, a *acc) bool {
					a.Hits = append(a.Hits, "alpha")
					a.Label = "alpha"
					return true
				},
			},
			{
				Topic:    "picky",
				Triggers: Terms{"picky"},
				Apply: func(text string, a *acc) bool {
					if !confirm.In(text) {
						return false
					}
					a.Hits = append(a.Hits, "picky")
					a.Label = "picky"
					return true
				},
			},
			{
				Topic:    "beta",
				Triggers: Terms{"beta", "gamma"},
				Apply: func(text string, a *acc) bool {
					a.Hits = append(a.Hits, "beta")
					a.Label = "beta"
					return true
				},
			},
		},
	}
}

func TestTermsIn(t *testing.T) {
	assert.True(t, Terms{"x", "gmp"}.In("ipo gmp rises"))
	assert.False(t, Terms{"gmp"}.In(""))
	assert.False(t, Terms{}.In("anything"))
}

func TestFirstMatchStopsAtFirstFiredRule(t *testing.T) {
	e := newEngine(FirstMatch)
	got := e.Evaluate("ALPHA and Beta")
	assert.Equal(t, "alpha", got.Label)
	assert.Equal(t, []string{"alpha"}, got.Hits)
}

func TestFirstMatchFallsThroughWhenApplyDoesNotFire(t *testing.T) {
	e := newEngine(FirstMatch)
	got := e.Evaluate("picky gamma")
	assert.Equal(t, "beta", got.Label)

	got = e.Evaluate("picky only")
	assert.Equal(t, "none", got.Label)
	assert.Empty(t, got.Hits)
}

func TestAccumulateLastWins(t *testing.T) {
	e := newEngine(AccumulateLastWins)
	got := e.Evaluate("alpha picky yes beta")
	assert.Equal(t, "beta", got.Label)
	assert.Equal(t, []string{"alpha", "picky", "beta"}, got.Hits)
}

func TestEvaluateEmptyHeadline(t *testing.T) {
	for _, p := range []Policy{FirstMatch, AccumulateLastWins} {
		got := newEngine(p).Evaluate("")
		assert.Equal(t, acc{Label: "none", Hits: []string{}}, got, p.String())
	}
}

func TestTopicsOrder(t *testing.T) {
	assert.Equal(t, []string{"alpha", "picky", "beta"}, newEngine(FirstMatch).Topics())
}
