package truthtable

import (
	"fmt"

	"github.com/DjordjeVuckovic/truthtable/internal/eval"
	"github.com/DjordjeVuckovic/truthtable/internal/token"
)

// Counterexample is an assignment on which two formulas disagree. Values
// follow EquivalenceResult.Variables.
type Counterexample struct {
	Values []bool
	Left   bool
	Right  bool
}

type EquivalenceResult struct {
	Left           string
	Right          string
	Variables      Variables
	Equivalent     bool
	Counterexample *Counterexample
}

// Equivalent compares left and right on every assignment of the union of
// their variables and stops at the first row where they differ.
func Equivalent(left, right string) (*EquivalenceResult, error) {
	lp, err := NewPlan(left)
	if err != nil {
		return nil, fmt.Errorf("left formula: %w", err)
	}
	rp, err := NewPlan(right)
	if err != nil {
		return nil, fmt.Errorf("right formula: %w", err)
	}
	return Compare(lp, rp)
}

// UnionVariables returns the variables used by any of the plans.
func UnionVariables(plans ...*Plan) Variables {
	seqs := make([]token.Sequence, len(plans))
	for i, p := range plans {
		seqs[i] = p.Tokens
	}
	return collectVariables(seqs...)
}

// Compare is Equivalent for formulas that are already planned.
func Compare(lp, rp *Plan) (*EquivalenceResult, error) {
	union := &Plan{Variables: UnionVariables(lp, rp)}
	res := &EquivalenceResult{
		Left:       lp.Formula,
		Right:      rp.Formula,
		Variables:  union.Variables,
		Equivalent: true,
	}

	var values eval.Assignment
	for i := 0; i < union.RowCount(); i++ {
		union.Assign(i, &values)

		l, err := eval.Evaluate(lp.Tokens, &values)
		if err != nil {
			return nil, fmt.Errorf("left formula, row %d: %w", i, err)
		}
		r, err := eval.Evaluate(rp.Tokens, &values)
		if err != nil {
			return nil, fmt.Errorf("right formula, row %d: %w", i, err)
		}

		if l != r {
			ce := &Counterexample{Values: make([]bool, len(union.Variables)), Left: l, Right: r}
			for j, letter := range union.Variables {
				ce.Values[j] = values[eval.Index(letter)]
			}
			res.Equivalent = false
			res.Counterexample = ce
			return res, nil
		}
	}

	return res, nil
}
