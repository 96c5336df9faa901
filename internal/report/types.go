package report

import (
	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
)

// Report is the serializable form of a truth table.
type Report struct {
	ID             string     `json:"id,omitempty"`
	Formula        string     `json:"formula"`
	Variables      []string   `json:"variables"`
	Reverse        bool       `json:"reverse"`
	Classification string     `json:"classification"`
	Rows           []RowEntry `json:"rows"`
}

type RowEntry struct {
	Index  int             `json:"index"`
	Values map[string]bool `json:"values"`
	Result *bool           `json:"result,omitempty"`
	Error  *ErrorEntry     `json:"error,omitempty"`
}

type ErrorEntry struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Position int    `json:"position"`
}

func NewErrorEntry(err error) *ErrorEntry {
	if err == nil {
		return nil
	}
	return &ErrorEntry{
		Kind:     apperr.KindOf(err).String(),
		Message:  err.Error(),
		Position: apperr.PositionOf(err),
	}
}

func Generate(t *truthtable.Table) *Report {
	r := &Report{
		Formula:        t.Formula,
		Variables:      t.Variables.Strings(),
		Reverse:        t.Reverse,
		Classification: t.Classify().String(),
		Rows:           make([]RowEntry, 0, len(t.Rows)),
	}

	for _, row := range t.Rows {
		entry := RowEntry{
			Index:  row.Index,
			Values: make(map[string]bool, len(row.Values)),
		}
		for j, v := range row.Values {
			entry.Values[r.Variables[j]] = v
		}
		if row.Err != nil {
			entry.Error = NewErrorEntry(row.Err)
		} else {
			result := row.Result
			entry.Result = &result
		}
		r.Rows = append(r.Rows, entry)
	}

	return r
}
