package token

import (
	"fmt"

	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
)

// TextValidator checks the raw formula text before it is tokenized. It only
// knows about parentheses and the single-character binary operators; letters
// and the multi-character operators are left to the lexer.
type TextValidator struct{}

func NewTextValidator() *TextValidator {
	return &TextValidator{}
}

func (v *TextValidator) Validate(input string) error {
	if len(input) == 0 {
		return apperr.NewFormula(apperr.EmptyExpression, 0, "")
	}
	if len(input) > MaxLength {
		return apperr.NewFormula(apperr.ExpressionTooLong, 0,
			fmt.Sprintf("%d characters, at most %d allowed", len(input), MaxLength))
	}
	if err := checkParentheses(input); err != nil {
		return err
	}
	return checkBinaryOperators(input)
}

func checkParentheses(input string) error {
	balance := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			balance++
		case ')':
			balance--
			if balance < 0 {
				return apperr.NewFormula(apperr.UnbalancedParentheses, i, "closing parenthesis without a matching opening one")
			}
		}
	}

	if balance > 0 {
		return apperr.NewFormula(apperr.UnbalancedParentheses, len(input)-1, "opening parenthesis without a matching closing one")
	}
	return nil
}

func checkBinaryOperators(input string) error {
	last := len(input) - 1
	for i := 0; i < len(input); i++ {
		if !isBinaryChar(input[i]) {
			continue
		}
		if i == 0 || i == last {
			return apperr.NewFormula(apperr.MissingOperand, i, "binary operator without enough operands")
		}
		if isBinaryChar(input[i-1]) {
			return apperr.NewFormula(apperr.ConsecutiveOperators, i,
				fmt.Sprintf("operators '%c' and '%c' are adjacent", input[i-1], input[i]))
		}
		if isBinaryChar(input[i+1]) {
			return apperr.NewFormula(apperr.ConsecutiveOperators, i,
				fmt.Sprintf("operators '%c' and '%c' are adjacent", input[i], input[i+1]))
		}
	}
	return nil
}

func isBinaryChar(c byte) bool {
	return c == '&' || c == '|'
}
