package dice

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	// MaxDice caps the number of dice in a single term.
	MaxDice = 1000
	// MaxSides caps the number of faces on a single die.
	MaxSides = 100000
)

// Parse tokenizes a die roll expression into its ordered terms.
//
// The expression is split into clauses at every + and - operator, each
// operator supplying the sign of the clause it precedes; the first clause
// defaults to positive when unsigned. A clause is either a die roll
// ("<count>d<sides>", case-insensitive d, both literals >= 1) or a
// non-negative integer modifier. Whitespace is ignored anywhere.
//
// Parsing is all-or-nothing: an empty expression, an empty clause (dangling
// or doubled operator), or any clause outside the grammar fails the whole
// parse with no partial result.
func Parse(expression string) ([]Term, error) {
	expr := stripSpace(expression)
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	var terms []Term
	for i := 0; i < len(expr); {
		sign := 1
		switch expr[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}

		start := i
		for i < len(expr) && expr[i] != '+' && expr[i] != '-' {
			i++
		}

		term, err := parseTerm(expr[start:i], sign)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	return terms, nil
}

// parseTerm classifies a single signless clause as a die roll or a
// modifier. The clause's sign was consumed by the caller.
func parseTerm(clause string, sign int) (Term, error) {
	if clause == "" {
		return Term{}, fmt.Errorf("empty term: %w", ErrInvalidTerm)
	}

	if d := strings.IndexAny(clause, "dD"); d >= 0 {
		count, err := strconv.Atoi(clause[:d])
		if err != nil {
			return Term{}, fmt.Errorf("parse term %q: %w", clause, ErrInvalidTerm)
		}
		sides, err := strconv.Atoi(clause[d+1:])
		if err != nil {
			return Term{}, fmt.Errorf("parse term %q: %w", clause, ErrInvalidTerm)
		}
		if count < 1 || sides < 1 {
			return Term{}, fmt.Errorf("parse term %q: %w", clause, ErrInvalidDieSpec)
		}
		if count > MaxDice || sides > MaxSides {
			return Term{}, fmt.Errorf("parse term %q: %w", clause, ErrTermTooLarge)
		}
		return Term{Kind: TermDieRoll, Count: count, Sides: sides, Sign: sign}, nil
	}

	value, err := strconv.Atoi(clause)
	if err != nil {
		return Term{}, fmt.Errorf("parse term %q: %w", clause, ErrInvalidTerm)
	}
	return Term{Kind: TermModifier, Value: value, Sign: sign}, nil
}

// stripSpace removes all whitespace from the expression.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
