package truthtable

import (
	"fmt"
	"strings"
)

type Classification int

const (
	Tautology Classification = iota
	Contradiction
	Contingent
	// Undetermined is reported when at least one row failed to evaluate.
	Undetermined
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	case Contingent:
		return "contingent"
	case Undetermined:
		return "undetermined"
	default:
		return "unknown"
	}
}

func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tautology":
		return Tautology, nil
	case "contradiction":
		return Contradiction, nil
	case "contingent", "contingency":
		return Contingent, nil
	case "undetermined":
		return Undetermined, nil
	default:
		return 0, fmt.Errorf("invalid classification: %q", s)
	}
}

func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Classification) UnmarshalText(text []byte) error {
	parsed, err := ParseClassification(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Classify reports whether the formula is true on every row, false on every
// row, or neither.
func (t *Table) Classify() Classification {
	trues, falses := 0, 0
	for _, row := range t.Rows {
		if row.Err != nil {
			return Undetermined
		}
		if row.Result {
			trues++
		} else {
			falses++
		}
	}

	switch {
	case falses == 0 && trues > 0:
		return Tautology
	case trues == 0 && falses > 0:
		return Contradiction
	case trues > 0 && falses > 0:
		return Contingent
	default:
		return Undetermined
	}
}
