package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure of the formula pipeline.
type Kind int

const (
	Success Kind = iota
	InvalidSymbol
	UnbalancedParentheses
	InvalidExpression
	EmptyExpression
	ExpressionTooLong
	ConsecutiveOperators
	MissingOperand
	MemoryAllocation
	Unknown
)

// NoPosition marks errors that concern the whole expression.
const NoPosition = -1

var kindNames = map[Kind]string{
	Success:               "success",
	InvalidSymbol:         "invalid_symbol",
	UnbalancedParentheses: "unbalanced_parentheses",
	InvalidExpression:     "invalid_expression",
	EmptyExpression:       "empty_expression",
	ExpressionTooLong:     "expression_too_long",
	ConsecutiveOperators:  "consecutive_operators",
	MissingOperand:        "missing_operand",
	MemoryAllocation:      "memory_allocation",
	Unknown:               "unknown",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind accepts the snake_case names produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == want {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("invalid error kind: %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// FormulaError is the error status shared by the validator, the lexer and
// the evaluator. Position is a byte offset into the formula text or a token
// index, NoPosition when neither applies.
type FormulaError struct {
	Kind     Kind
	Message  string
	Position int
}

func (e *FormulaError) Error() string {
	return e.Message
}

// NewFormula builds the error and its final message. Messages are not
// rewritten after this point.
func NewFormula(kind Kind, position int, detail string) *FormulaError {
	return &FormulaError{
		Kind:     kind,
		Message:  formatMessage(kind, position, detail),
		Position: position,
	}
}

func formatMessage(kind Kind, position int, detail string) string {
	var msg string
	switch kind {
	case InvalidSymbol:
		msg = "invalid symbol in expression" + at(position)
	case UnbalancedParentheses:
		msg = "unbalanced parentheses" + at(position)
	case InvalidExpression:
		msg = "invalid logical expression"
	case EmptyExpression:
		msg = "expression is empty"
	case ExpressionTooLong:
		msg = "expression exceeds the maximum allowed size"
	case ConsecutiveOperators:
		msg = "invalid consecutive operators" + at(position)
	case MissingOperand:
		msg = "missing operand for operator" + at(position)
	case MemoryAllocation:
		msg = "memory allocation failure"
	default:
		msg = "unknown error"
	}
	if detail != "" {
		msg += ": " + detail
	}
	return msg
}

func at(position int) string {
	if position < 0 {
		return ""
	}
	return fmt.Sprintf(" at position %d", position)
}

// KindOf reports the kind carried by err. A nil error is Success.
func KindOf(err error) Kind {
	if err == nil {
		return Success
	}
	var fe *FormulaError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// PositionOf reports the position carried by err, NoPosition if there is none.
func PositionOf(err error) int {
	var fe *FormulaError
	if errors.As(err, &fe) {
		return fe.Position
	}
	return NoPosition
}
