package clause

import "strconv"
import "strings"

import "github.com/neurlang/tsetlin/automaton"

// Literal is an included literal: feature Feature, negated when Negated is set.
type Literal struct {
	Feature int
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "¬x" + strconv.Itoa(l.Feature)
	}
	return "x" + strconv.Itoa(l.Feature)
}

// Rule is a clause rendered for reading.
type Rule struct {
	Polarity bool
	Literals []Literal
	Text     string
}

// Literals lists the included literals ordered by feature, the positive literal first.
func (c *Clause) Literals() (o []Literal) {
	for i := range c.positive {
		if c.positive[i].Action() == automaton.Include {
			o = append(o, Literal{Feature: i})
		}
		if c.negative[i].Action() == automaton.Include {
			o = append(o, Literal{Feature: i, Negated: true})
		}
	}
	return
}

// String renders the clause as a conjunction, or ⊤ when it includes nothing.
func (c *Clause) String() string {
	var lits = c.Literals()
	if len(lits) == 0 {
		return "⊤"
	}
	var sb strings.Builder
	for i, l := range lits {
		if i > 0 {
			sb.WriteString(" ∧ ")
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Rules renders every clause in bank order
func (b *Bank) Rules() []Rule {
	var o = make([]Rule, len(b.clauses))
	for i := range b.clauses {
		o[i] = Rule{
			Polarity: b.polarities[i],
			Literals: b.clauses[i].Literals(),
			Text:     b.clauses[i].String(),
		}
	}
	return o
}
