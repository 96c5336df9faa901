package token

import (
	"fmt"
	"strings"
)

const (
	// MaxLength bounds the formula text in bytes.
	MaxLength = 100
	// MaxTokens bounds the token sequence produced from one formula.
	MaxTokens = 100
)

type Type int

const (
	PROP Type = iota
	OP
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case PROP:
		return "PROP"
	case OP:
		return "OP"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Operator is the closed set of logical connectives.
type Operator int

const (
	Not Operator = iota
	And
	Or
	Implies
	Iff
)

func (o Operator) String() string {
	switch o {
	case Not:
		return "NOT"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Implies:
		return "IMPLIES"
	case Iff:
		return "IFF"
	default:
		return "UNKNOWN"
	}
}

// Lexeme returns the source spelling of the operator.
func (o Operator) Lexeme() string {
	switch o {
	case Not:
		return "~"
	case And:
		return "&"
	case Or:
		return "|"
	case Implies:
		return "->"
	case Iff:
		return "<->"
	default:
		return "?"
	}
}

// Precedence is higher for operators that bind tighter.
func (o Operator) Precedence() int {
	switch o {
	case Not:
		return 4
	case And:
		return 3
	case Or:
		return 2
	case Implies:
		return 1
	case Iff:
		return 0
	default:
		return -1
	}
}

func (o Operator) IsUnary() bool {
	return o == Not
}

// RightAssociative holds only for IMPLIES: A->B->C reads as A->(B->C).
func (o Operator) RightAssociative() bool {
	return o == Implies
}

func ParseOperator(lexeme string) (Operator, error) {
	switch lexeme {
	case "~":
		return Not, nil
	case "&":
		return And, nil
	case "|":
		return Or, nil
	case "->":
		return Implies, nil
	case "<->":
		return Iff, nil
	default:
		return 0, fmt.Errorf("invalid operator: %q", lexeme)
	}
}

// Token represents a lexical token with its type, literal value and the byte
// offset where it starts in the formula.
type Token struct {
	Type  Type
	Value string
	Op    Operator
	Pos   int
}

func NewProp(letter byte, pos int) Token {
	return Token{Type: PROP, Value: string(letter), Pos: pos}
}

func NewOp(op Operator, pos int) Token {
	return Token{Type: OP, Value: op.Lexeme(), Op: op, Pos: pos}
}

func NewParen(open bool, pos int) Token {
	if open {
		return Token{Type: LPAREN, Value: "(", Pos: pos}
	}
	return Token{Type: RPAREN, Value: ")", Pos: pos}
}

// Letter returns the proposition letter, 0 for other token types.
func (t Token) Letter() byte {
	if t.Type != PROP || t.Value == "" {
		return 0
	}
	return t.Value[0]
}

func (t Token) IsBinary() bool {
	return t.Type == OP && !t.Op.IsUnary()
}

// Sequence is the read-only output of one tokenization.
type Sequence []Token

// String rebuilds a canonical formula text without whitespace.
func (s Sequence) String() string {
	var b strings.Builder
	for _, tok := range s {
		b.WriteString(tok.Value)
	}
	return b.String()
}
