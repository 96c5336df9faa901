package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/truthtable/internal/suite"
)

func WriteSuiteSummary(r *suite.Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Suite)
	fmt.Fprintln(tw, strings.Join([]string{"Case", "Formula", "Status", "Time", "Reason"}, "\t"))
	fmt.Fprintln(tw, strings.Join([]string{"---", "---", "---", "---", "---"}, "\t"))

	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", res.ID, res.Formula, status, formatDuration(res.Duration), res.Reason)
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed\n", r.Passed, r.Failed)
	if t := r.Timing; t.Cases > 0 {
		fmt.Fprintf(tw, "time: total %s, mean %s, p95 %s, max %s\n",
			formatDuration(t.Total), formatDuration(t.Mean), formatDuration(t.P95), formatDuration(t.Max))
	}
	tw.Flush()
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	}
}
