package dice

import "errors"

// ErrEmptyExpression indicates an expression with no terms at all.
var ErrEmptyExpression = errors.New("expression must contain at least one term")

// ErrInvalidTerm indicates a term that is neither a die roll nor an
// integer modifier.
var ErrInvalidTerm = errors.New("term must be a die roll or an integer modifier")

// ErrInvalidDieSpec indicates a die roll term with invalid fields.
var ErrInvalidDieSpec = errors.New("dice must have positive sides and count")

// ErrTermTooLarge indicates a die roll term beyond the supported caps.
var ErrTermTooLarge = errors.New("term exceeds the supported dice count or sides")

// ErrMissingTerms indicates an evaluation request with no terms.
var ErrMissingTerms = errors.New("at least one term must be provided")

// ErrInvalidRange indicates a range roll whose bounds are reversed.
var ErrInvalidRange = errors.New("low bound must not exceed high bound")
