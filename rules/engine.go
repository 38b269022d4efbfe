package rules

import "strings"

// Policy decides how the outcomes of several matching rules combine.
type Policy int

const (
	// FirstMatch stops at the first rule whose Apply fired.
	FirstMatch Policy = iota
	// AccumulateLastWins runs every rule in order. Later rules overwrite
	// scalar fields written by earlier ones.
	AccumulateLastWins
)

func (p Policy) String() string {
	switch p {
	case FirstMatch:
		return "first_match"
	case AccumulateLastWins:
		return "accumulate_last_wins"
	}
	return "unknown"
}

// Terms is a list of trigger substrings.
type Terms []string

// In reports whether any term occurs in text. text must already be lower case.
func (ts Terms) In(text string) bool {
	for _, t := range ts {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// Rule is one topic check. Apply is only called when Triggers matched and
// reports whether one of its branches changed the accumulator.
type Rule[V any] struct {
	Topic    string
	Triggers Terms
	Apply    func(text string, acc *V) bool
}

// Engine evaluates an ordered rule table against a headline.
type Engine[V any] struct {
	Policy  Policy
	Rules   []Rule[V]
	Default func() V
}

// Evaluate lower-cases headline once and runs the table over it.
func (e *Engine[V]) Evaluate(headline string) V {
	var acc V
	if e.Default != nil {
		acc = e.Default()
	}
	text := strings.ToLower(headline)
	for _, r := range e.Rules {
		if !r.Triggers.In(text) {
			continue
		}
		fired := true
		if r.Apply != nil {
			fired = r.Apply(text, &acc)
		}
		if fired && e.Policy == FirstMatch {
			return acc
		}
	}
	return acc
}

// Topics lists rule topics in evaluation order.
func (e *Engine[V]) Topics() []string {
	out := make([]string, 0, len(e.Rules))
	for _, r := range e.Rules {
		out = append(out, r.Topic)
	}
	return out
}
