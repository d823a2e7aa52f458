package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingParameter is wrapped by a ParseError when the token list ends
// while an operation still waits for its parameter.
var ErrMissingParameter = errors.New("missing parameter")

// ParseError reports a token that could not be used as the parameter of
// Operation.
type ParseError struct {
	Token     string
	Operation string
	Err       error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrMissingParameter) {
		return fmt.Sprintf("%s: missing numeric parameter", e.Operation)
	}
	return fmt.Sprintf("invalid argument %q for %s: expected a number", e.Token, e.Operation)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseTokens turns command tokens into operations.
//
// Tokens are case-insensitive. "normalize" and "scale-sqrt" stand alone;
// "scale-linear" and "shorten" take the next token as a floating point
// parameter. Any other token is ignored unless a parameter is pending.
func ParseTokens(tokens []string) ([]Operation, error) {
	var (
		ops     []Operation
		pending string
	)

	for _, raw := range tokens {
		token := strings.ToLower(raw)

		if pending != "" {
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, &ParseError{Token: raw, Operation: pending, Err: err}
			}
			switch pending {
			case OpScaleLinear:
				ops = append(ops, ScaleLinear{Scale: v})
			case OpShorten:
				ops = append(ops, Shorten{Diff: v})
			}
			pending = ""
			continue
		}

		switch token {
		case OpNormalize:
			ops = append(ops, NewNormalize())
		case OpScaleSqrt:
			ops = append(ops, ScaleSqrt{})
		case OpScaleLinear, OpShorten:
			pending = token
		}
	}

	if pending != "" {
		return nil, &ParseError{Operation: pending, Err: ErrMissingParameter}
	}

	return ops, nil
}

// Describe renders operations back into their token form.
func Describe(ops []Operation) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.String())
	}
	return out
}
