package dice

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/louisbranch/dice/internal/random"
)

// Roll is the evaluated result of a die roll expression.
type Roll struct {
	// Expression is the normalized, whitespace-free rendering of the terms
	// that produced this roll, e.g. "2d6+6+4d10".
	Expression string
	// Results holds one entry per term, in expression order.
	Results []TermResult
	// Total is the sum of all signed term contributions. It may be negative.
	Total int
}

// String renders the roll with its full breakdown, e.g.
// "3d6[4, 2, 5]+4 (Total: 15)".
func (r Roll) String() string {
	var b strings.Builder
	for i, tr := range r.Results {
		writeClause(&b, i, tr.String())
	}
	fmt.Fprintf(&b, " (Total: %d)", r.Total)
	return b.String()
}

// Roller returns a new Roller over this roll's terms, seeded with fresh
// entropy. Successive Next calls are independent of this roll and of each
// other.
func (r Roll) Roller() (*Roller, error) {
	terms := make([]Term, len(r.Results))
	for i, tr := range r.Results {
		terms[i] = tr.Term
	}

	rng, err := random.NewRand()
	if err != nil {
		return nil, err
	}
	return &Roller{terms: terms, rng: rng}, nil
}

// RollDice parses and evaluates a die roll expression in one call.
//
// Example:
//
//	roll, err := RollDice("3d6 + 4")
//
// After a successful call, roll.Results holds one entry per term with the
// individual die outcomes, and roll.Total is the signed sum of every term.
func RollDice(expression string) (Roll, error) {
	roller, err := NewRoller(expression)
	if err != nil {
		return Roll{}, err
	}
	return roller.Next(), nil
}

// Evaluate rolls the provided terms using the supplied random source.
//
// Terms are processed in slice order and the Results entries of the
// returned Roll appear in the same order. Evaluation draws fresh values on
// every call; nothing is cached between calls.
//
// Errors:
//   - At least one term must be provided, otherwise ErrMissingTerms is
//     returned.
//   - Each die roll term must have Count >= 1 and Sides >= 1, otherwise
//     ErrInvalidDieSpec is returned.
//   - Each term must have a known Kind, a Sign of +1 or -1, and a
//     non-negative Value, otherwise ErrInvalidTerm is returned.
func Evaluate(rng *rand.Rand, terms []Term) (Roll, error) {
	if len(terms) == 0 {
		return Roll{}, ErrMissingTerms
	}
	for _, t := range terms {
		if err := validateTerm(t); err != nil {
			return Roll{}, err
		}
	}
	return evaluate(rng, terms), nil
}

// Roller draws repeated independent rolls from a parsed expression. It is
// unbounded by construction; callers decide how many rolls to take.
type Roller struct {
	terms []Term
	rng   *rand.Rand
}

// NewRoller parses the expression and returns a Roller seeded with fresh
// entropy.
func NewRoller(expression string) (*Roller, error) {
	rng, err := random.NewRand()
	if err != nil {
		return nil, err
	}
	return NewRollerWithRng(expression, rng)
}

// NewRollerWithRng parses the expression and returns a Roller that draws
// from the provided random source. This is useful when you want to control
// the RNG directly.
func NewRollerWithRng(expression string, rng *rand.Rand) (*Roller, error) {
	terms, err := Parse(expression)
	if err != nil {
		return nil, err
	}
	return &Roller{terms: terms, rng: rng}, nil
}

// Terms returns a copy of the roller's parsed terms in expression order.
func (r *Roller) Terms() []Term {
	terms := make([]Term, len(r.terms))
	copy(terms, r.terms)
	return terms
}

// Next evaluates the roller's terms with fresh random draws. Each call is
// independent; prior results are never replayed.
func (r *Roller) Next() Roll {
	return evaluate(r.rng, r.terms)
}

// evaluate rolls already-validated terms. Terms coming from Parse always
// satisfy the validation invariants.
func evaluate(rng *rand.Rand, terms []Term) Roll {
	results := make([]TermResult, 0, len(terms))
	total := 0

	for _, t := range terms {
		tr := evaluateTerm(rng, t)
		results = append(results, tr)
		total += tr.Total
	}

	return Roll{
		Expression: expressionString(terms),
		Results:    results,
		Total:      total,
	}
}

// evaluateTerm rolls a single term.
func evaluateTerm(rng *rand.Rand, t Term) TermResult {
	if t.Kind != TermDieRoll {
		return TermResult{
			Term:   t,
			Values: []int{t.Sign * t.Value},
			Total:  t.Sign * t.Value,
		}
	}

	values := make([]int, t.Count)
	sum := 0
	for i := range values {
		v := rollDie(rng, t.Sides)
		values[i] = v
		sum += v
	}
	return TermResult{Term: t, Values: values, Total: t.Sign * sum}
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}

func validateTerm(t Term) error {
	switch t.Kind {
	case TermDieRoll:
		if t.Count < 1 || t.Sides < 1 {
			return ErrInvalidDieSpec
		}
	case TermModifier:
		if t.Value < 0 {
			return fmt.Errorf("negative modifier value: %w", ErrInvalidTerm)
		}
	default:
		return fmt.Errorf("unknown term kind %d: %w", t.Kind, ErrInvalidTerm)
	}
	if t.Sign != 1 && t.Sign != -1 {
		return fmt.Errorf("sign must be +1 or -1: %w", ErrInvalidTerm)
	}
	return nil
}

// expressionString renders terms back into normalized expression notation.
func expressionString(terms []Term) string {
	var b strings.Builder
	for i, t := range terms {
		writeClause(&b, i, t.String())
	}
	return b.String()
}

// writeClause appends one rendered clause, dropping a redundant leading +
// on the first clause and inserting a + operator before unsigned ones.
func writeClause(b *strings.Builder, i int, clause string) {
	switch {
	case i == 0:
		clause = strings.TrimPrefix(clause, "+")
	case clause[0] != '+' && clause[0] != '-':
		b.WriteByte('+')
	}
	b.WriteString(clause)
}
