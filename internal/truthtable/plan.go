package truthtable

import (
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
	"github.com/DjordjeVuckovic/truthtable/internal/eval"
	"github.com/DjordjeVuckovic/truthtable/internal/token"
)

// Variables lists the propositions of a formula: uppercase letters in
// alphabetical order, then lowercase letters in alphabetical order.
type Variables []byte

func (v Variables) Strings() []string {
	out := make([]string, len(v))
	for i, letter := range v {
		out[i] = string(letter)
	}
	return out
}

func (v Variables) String() string {
	return strings.Join(v.Strings(), ", ")
}

// Plan is a validated, tokenized formula ready for row enumeration.
type Plan struct {
	Formula   string
	Tokens    token.Sequence
	Variables Variables
}

// Planner runs the validation and tokenization passes. A Planner holds a
// stateful tokenizer and must not be shared between goroutines.
type Planner struct {
	validator token.Validator
	tokenizer token.Tokenizer
}

func NewPlanner() *Planner {
	return &Planner{
		validator: token.NewTextValidator(),
		tokenizer: token.NewLogicTokenizer(),
	}
}

func NewPlannerWith(validator token.Validator, tokenizer token.Tokenizer) *Planner {
	return &Planner{validator: validator, tokenizer: tokenizer}
}

// NewPlan plans formula with a fresh Planner.
func NewPlan(formula string) (*Plan, error) {
	return NewPlanner().Plan(formula)
}

func (p *Planner) Plan(formula string) (*Plan, error) {
	if err := p.validator.Validate(formula); err != nil {
		return nil, err
	}

	tokens, err := p.tokenizer.Tokenize(formula)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, apperr.NewFormula(apperr.EmptyExpression, apperr.NoPosition, "no tokens after processing")
	}

	vars := collectVariables(tokens)
	if len(vars) == 0 {
		return nil, apperr.NewFormula(apperr.InvalidExpression, apperr.NoPosition, "no propositions found in the expression")
	}

	slog.Debug("formula planned", "formula", formula, "tokens", len(tokens), "variables", vars.String())

	return &Plan{
		Formula:   formula,
		Tokens:    tokens,
		Variables: vars,
	}, nil
}

// collectVariables returns the distinct letters used across all sequences.
// The order follows eval.Index, not the order of first appearance.
func collectVariables(seqs ...token.Sequence) Variables {
	var used [eval.MaxVars]bool
	for _, seq := range seqs {
		for _, tok := range seq {
			if tok.Type != token.PROP {
				continue
			}
			if letter := tok.Letter(); eval.IsProposition(letter) {
				used[eval.Index(letter)] = true
			}
		}
	}

	var vars Variables
	for idx, ok := range used {
		if ok {
			vars = append(vars, eval.Letter(idx))
		}
	}
	return vars
}

// RowCount is 2^len(Variables).
func (p *Plan) RowCount() int {
	return 1 << len(p.Variables)
}

// Assign writes row i into values. Variable j takes bit (n-j-1) of i, so the
// first variable is the most significant bit.
func (p *Plan) Assign(i int, values *eval.Assignment) {
	n := len(p.Variables)
	for j, letter := range p.Variables {
		values[eval.Index(letter)] = (i>>(n-j-1))&1 == 1
	}
}
