package eval

import (
	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
	"github.com/DjordjeVuckovic/truthtable/internal/token"
)

// Evaluate computes the truth value of tokens under values using an operand
// stack and an operator stack. Error positions are token indexes, or
// apperr.NoPosition while draining the operator stack at the end.
func Evaluate(tokens token.Sequence, values *Assignment) (bool, error) {
	if values == nil {
		values = &Assignment{}
	}
	e := &evaluator{
		operands:  make([]bool, 0, len(tokens)),
		operators: make([]token.Token, 0, len(tokens)),
		values:    values,
	}
	return e.run(tokens)
}

type evaluator struct {
	operands  []bool
	operators []token.Token
	values    *Assignment
}

func (e *evaluator) run(tokens token.Sequence) (bool, error) {
	for i, tok := range tokens {
		var err error
		switch tok.Type {
		case token.PROP:
			err = e.pushProposition(tok, i)
		case token.OP:
			err = e.pushOperator(tok, i)
		case token.LPAREN:
			e.operators = append(e.operators, tok)
		case token.RPAREN:
			err = e.closeGroup(i)
		default:
			err = apperr.NewFormula(apperr.InvalidSymbol, i, "unknown token "+tok.Value)
		}
		if err != nil {
			return false, err
		}
	}

	for len(e.operators) > 0 {
		if e.top().Type == token.LPAREN {
			return false, apperr.NewFormula(apperr.UnbalancedParentheses, apperr.NoPosition,
				"opening parenthesis without a matching closing one")
		}
		if err := e.reduce(apperr.NoPosition); err != nil {
			return false, err
		}
	}

	if len(e.operands) != 1 {
		return false, apperr.NewFormula(apperr.InvalidExpression, apperr.NoPosition,
			"unbalanced expression, multiple results on the stack")
	}
	return e.operands[0], nil
}

func (e *evaluator) pushProposition(tok token.Token, i int) error {
	letter := tok.Letter()
	if !IsProposition(letter) {
		return apperr.NewFormula(apperr.InvalidSymbol, i, "proposition out of the valid range")
	}
	e.operands = append(e.operands, e.values[Index(letter)])
	return nil
}

func (e *evaluator) pushOperator(tok token.Token, i int) error {
	if tok.Op.IsUnary() {
		e.operators = append(e.operators, tok)
		return nil
	}

	for len(e.operators) > 0 && e.shouldReduce(e.top(), tok.Op) {
		if err := e.reduce(i); err != nil {
			return err
		}
	}
	e.operators = append(e.operators, tok)
	return nil
}

// shouldReduce pops tighter-binding operators, and equal ones unless the
// stacked operator is right-associative.
func (e *evaluator) shouldReduce(top token.Token, incoming token.Operator) bool {
	if top.Type != token.OP {
		return false
	}
	if top.Op.Precedence() > incoming.Precedence() {
		return true
	}
	return top.Op.Precedence() == incoming.Precedence() && !top.Op.RightAssociative()
}

func (e *evaluator) closeGroup(i int) error {
	for len(e.operators) > 0 && e.top().Type != token.LPAREN {
		if err := e.reduce(i); err != nil {
			return err
		}
	}
	if len(e.operators) == 0 {
		return apperr.NewFormula(apperr.UnbalancedParentheses, i,
			"closing parenthesis without a matching opening one")
	}
	e.operators = e.operators[:len(e.operators)-1]
	return nil
}

// reduce pops the top operator and applies it to one or two operands.
func (e *evaluator) reduce(pos int) error {
	op := e.top().Op
	e.operators = e.operators[:len(e.operators)-1]

	if op.IsUnary() {
		b, ok := e.pop()
		if !ok {
			return apperr.NewFormula(apperr.MissingOperand, pos, "not enough operands for operator '"+op.Lexeme()+"'")
		}
		e.operands = append(e.operands, !b)
		return nil
	}

	if len(e.operands) < 2 {
		return apperr.NewFormula(apperr.MissingOperand, pos, "not enough operands for operator '"+op.Lexeme()+"'")
	}
	b, _ := e.pop()
	a, _ := e.pop()
	e.operands = append(e.operands, Apply(op, a, b))
	return nil
}

func (e *evaluator) top() token.Token {
	return e.operators[len(e.operators)-1]
}

func (e *evaluator) pop() (bool, bool) {
	if len(e.operands) == 0 {
		return false, false
	}
	v := e.operands[len(e.operands)-1]
	e.operands = e.operands[:len(e.operands)-1]
	return v, true
}

// Apply evaluates a binary operator on a and b. For NOT only b is used.
func Apply(op token.Operator, a, b bool) bool {
	switch op {
	case token.Not:
		return !b
	case token.And:
		return a && b
	case token.Or:
		return a || b
	case token.Implies:
		return !a || b
	case token.Iff:
		return a == b
	default:
		return false
	}
}
