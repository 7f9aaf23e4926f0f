package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// TermKind identifies the two term shapes in a die roll expression.
type TermKind int

const (
	// TermDieRoll is a "<count>d<sides>" term.
	TermDieRoll TermKind = iota
	// TermModifier is a flat integer term.
	TermModifier
)

func (k TermKind) String() string {
	switch k {
	case TermDieRoll:
		return "die roll"
	case TermModifier:
		return "modifier"
	default:
		return "unknown"
	}
}

// Term is a single signed contribution to a die roll expression.
//
// Die roll terms use Count and Sides; modifier terms use Value. Sign is
// always +1 or -1 and applies to the term's summed contribution. Terms
// produced by Parse are always valid; Evaluate validates hand-built ones.
type Term struct {
	Kind  TermKind
	Count int
	Sides int
	Value int
	Sign  int
}

// String renders the term in expression notation: "3d6" or "-2d10" for die
// rolls, always-signed "+5" or "-5" for modifiers.
func (t Term) String() string {
	switch t.Kind {
	case TermDieRoll:
		if t.Sign < 0 {
			return fmt.Sprintf("-%dd%d", t.Count, t.Sides)
		}
		return fmt.Sprintf("%dd%d", t.Count, t.Sides)
	default:
		return fmt.Sprintf("%+d", t.Sign*t.Value)
	}
}

// TermResult captures the outcome of evaluating a single term.
type TermResult struct {
	// Term is the term that produced this result.
	Term Term
	// Values holds the individual die outcomes for a die roll term, or the
	// single signed literal for a modifier term.
	Values []int
	// Total is the term's signed contribution to the roll.
	Total int
}

// String renders the result with its breakdown: "3d6[4, 2, 5]" for die
// rolls, "+5" for modifiers.
func (tr TermResult) String() string {
	if tr.Term.Kind != TermDieRoll {
		return tr.Term.String()
	}

	parts := make([]string, len(tr.Values))
	for i, v := range tr.Values {
		parts[i] = strconv.Itoa(v)
	}
	return tr.Term.String() + "[" + strings.Join(parts, ", ") + "]"
}
