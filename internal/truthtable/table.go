package truthtable

import (
	"iter"
	"strings"

	"github.com/DjordjeVuckovic/truthtable/internal/eval"
)

const (
	TrueSymbol  = "V"
	FalseSymbol = "F"
	ErrorSymbol = "E"
)

func Symbol(b bool) string {
	if b {
		return TrueSymbol
	}
	return FalseSymbol
}

// Row is one assignment of the table. Values follow Plan.Variables. Err is
// set when this row could not be evaluated; other rows are unaffected.
type Row struct {
	Index  int
	Values []bool
	Result bool
	Err    error
}

type Table struct {
	Formula   string
	Variables Variables
	Reverse   bool
	Rows      []Row
}

// Row evaluates row i, reusing values as the assignment buffer.
func (p *Plan) Row(i int, values *eval.Assignment) Row {
	p.Assign(i, values)

	row := Row{Index: i, Values: make([]bool, len(p.Variables))}
	for j, letter := range p.Variables {
		row.Values[j] = values[eval.Index(letter)]
	}
	row.Result, row.Err = eval.Evaluate(p.Tokens, values)
	return row
}

// Rows yields every row, ascending from 0 or descending from RowCount()-1.
func (p *Plan) Rows(reverse bool) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		var values eval.Assignment
		n := p.RowCount()
		for k := 0; k < n; k++ {
			i := k
			if reverse {
				i = n - 1 - k
			}
			if !yield(p.Row(i, &values)) {
				return
			}
		}
	}
}

// maxPreallocRows bounds the up-front allocation of Plan.Table. Larger tables
// grow on append.
const maxPreallocRows = 1 << 16

// Table collects every row in memory. Callers that only print rows should
// range over Rows instead.
func (p *Plan) Table(reverse bool) *Table {
	t := &Table{
		Formula:   p.Formula,
		Variables: p.Variables,
		Reverse:   reverse,
		Rows:      make([]Row, 0, min(p.RowCount(), maxPreallocRows)),
	}
	for row := range p.Rows(reverse) {
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Generate validates, tokenizes and enumerates formula. Validation and
// tokenization errors are returned without a table.
func Generate(formula string, reverse bool) (*Table, error) {
	plan, err := NewPlan(formula)
	if err != nil {
		return nil, err
	}
	return plan.Table(reverse), nil
}

// Column renders the results in table order, E for rows that failed.
func (t *Table) Column() string {
	var b strings.Builder
	for _, row := range t.Rows {
		if row.Err != nil {
			b.WriteString(ErrorSymbol)
			continue
		}
		b.WriteString(Symbol(row.Result))
	}
	return b.String()
}

func (t *Table) ErrorCount() int {
	n := 0
	for _, row := range t.Rows {
		if row.Err != nil {
			n++
		}
	}
	return n
}
