package token

import (
	"fmt"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
)

// class is the kind of the last significant token seen by the lexer.
type class int

const (
	classNone class = iota
	classProp
	classOp
	classOpen
	classClose
)

// LogicTokenizer breaks a formula into tokens. It re-checks on its own that
// every binary operator has a left operand. Not safe for concurrent use.
type LogicTokenizer struct {
	input  string
	pos    int
	prev   class
	tokens Sequence
}

func NewLogicTokenizer() *LogicTokenizer {
	return &LogicTokenizer{}
}

// Tokenize converts the input string into a token Sequence.
// Example: Input: `~(A & b) -> C <-> D`
func (t *LogicTokenizer) Tokenize(input string) (Sequence, error) {
	t.input = input
	t.pos = 0
	t.prev = classNone
	t.tokens = make(Sequence, 0, min(len(input), MaxTokens))

	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if isSpace(ch) {
			t.pos++
			continue
		}

		start := t.pos
		var tok Token
		switch {
		case isLetter(ch):
			tok = NewProp(ch, start)
			t.pos++
			t.prev = classProp
		case ch == '~':
			tok = NewOp(Not, start)
			t.pos++
			t.prev = classOp
		case ch == '&' || ch == '|':
			if err := t.requireLeftOperand(start, string(ch)); err != nil {
				return nil, err
			}
			op := And
			if ch == '|' {
				op = Or
			}
			tok = NewOp(op, start)
			t.pos++
			t.prev = classOp
		case ch == '(':
			tok = NewParen(true, start)
			t.pos++
			t.prev = classOpen
		case ch == ')':
			tok = NewParen(false, start)
			t.pos++
			t.prev = classClose
		case t.hasPrefix("->"):
			if err := t.requireLeftOperand(start, "->"); err != nil {
				return nil, err
			}
			tok = NewOp(Implies, start)
			t.pos += 2
			t.prev = classOp
		case t.hasPrefix("<->"):
			if err := t.requireLeftOperand(start, "<->"); err != nil {
				return nil, err
			}
			tok = NewOp(Iff, start)
			t.pos += 3
			t.prev = classOp
		default:
			r, _ := utf8.DecodeRuneInString(t.input[start:])
			return nil, apperr.NewFormula(apperr.InvalidSymbol, start, fmt.Sprintf("found '%c'", r))
		}

		t.tokens = append(t.tokens, tok)
		if len(t.tokens) > MaxTokens {
			return nil, apperr.NewFormula(apperr.ExpressionTooLong, start,
				fmt.Sprintf("more than %d tokens", MaxTokens))
		}
	}

	if n := len(t.tokens); n > 0 && t.tokens[n-1].IsBinary() {
		return nil, apperr.NewFormula(apperr.MissingOperand, len(t.input)-1,
			fmt.Sprintf("operator '%s' has no right operand", t.tokens[n-1].Value))
	}

	return t.tokens, nil
}

func (t *LogicTokenizer) requireLeftOperand(pos int, lexeme string) error {
	if t.prev == classProp || t.prev == classClose {
		return nil
	}
	return apperr.NewFormula(apperr.MissingOperand, pos,
		fmt.Sprintf("operator '%s' has no left operand", lexeme))
}

func (t *LogicTokenizer) hasPrefix(lexeme string) bool {
	return len(t.input)-t.pos >= len(lexeme) && t.input[t.pos:t.pos+len(lexeme)] == lexeme
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
