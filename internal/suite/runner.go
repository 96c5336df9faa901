package suite

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
)

// MaxCaseVariables bounds the tables built for one case.
const MaxCaseVariables = 20

type CaseResult struct {
	ID       string
	Formula  string
	Passed   bool
	Reason   string
	Duration time.Duration
}

type Report struct {
	Suite   string
	Results []CaseResult
	Passed  int
	Failed  int
	Timing  Timing
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run checks every case of s. Cases are independent: a failing case does not
// stop the others.
func Run(s *Suite) *Report {
	rpt := &Report{Suite: s.Name, Results: make([]CaseResult, 0, len(s.Cases))}
	durations := make([]time.Duration, 0, len(s.Cases))

	for _, c := range s.Cases {
		res := CaseResult{ID: c.ID, Formula: c.Formula}

		start := time.Now()
		reason := check(c)
		res.Duration = time.Since(start)
		durations = append(durations, res.Duration)

		if reason != "" {
			res.Reason = reason
			rpt.Failed++
			slog.Debug("case failed", "suite", s.Name, "case", c.ID, "reason", reason)
		} else {
			res.Passed = true
			rpt.Passed++
		}
		rpt.Results = append(rpt.Results, res)
	}

	rpt.Timing = ComputeTiming(durations)
	return rpt
}

// check returns an empty string when the case passes, the failure reason
// otherwise.
func check(c Case) string {
	plan, err := truthtable.NewPlan(c.Formula)

	if c.Expect.Error != "" {
		want, _ := apperr.ParseKind(c.Expect.Error)
		if err == nil {
			return fmt.Sprintf("expected error %s, got none", want)
		}
		if got := apperr.KindOf(err); got != want {
			return fmt.Sprintf("expected error %s, got %s: %v", want, got, err)
		}
		return ""
	}
	if err != nil {
		return fmt.Sprintf("unexpected error: %v", err)
	}
	if n := len(plan.Variables); n > MaxCaseVariables {
		return fmt.Sprintf("formula uses %d variables, at most %d are allowed", n, MaxCaseVariables)
	}
	table := plan.Table(false)

	if c.Expect.Column != "" {
		want, _ := normalizeColumn(c.Expect.Column)
		if got := table.Column(); got != want {
			return fmt.Sprintf("column mismatch: expected %s, got %s", want, got)
		}
	}

	if c.Expect.Classification != "" {
		want, _ := truthtable.ParseClassification(c.Expect.Classification)
		if got := table.Classify(); got != want {
			return fmt.Sprintf("expected %s, got %s", want, got)
		}
	}

	if c.Expect.EquivalentTo != "" {
		eq, err := truthtable.Equivalent(c.Formula, c.Expect.EquivalentTo)
		if err != nil {
			return fmt.Sprintf("equivalence check failed: %v", err)
		}
		if !eq.Equivalent {
			return fmt.Sprintf("not equivalent to %q: differs at %s",
				c.Expect.EquivalentTo, describe(eq.Variables, eq.Counterexample.Values))
		}
	}

	return ""
}

func describe(vars truthtable.Variables, values []bool) string {
	out := ""
	for i, v := range vars {
		if i > 0 {
			out += " "
		}
		out += string(v) + "=" + truthtable.Symbol(values[i])
	}
	return out
}
