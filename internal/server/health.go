package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
	pkgserver "github.com/DjordjeVuckovic/truthtable/pkg/server"
)

// HealthProbeFormula must classify as a tautology on a working evaluator.
const HealthProbeFormula = "A|~A"

// NewFormulaHealthChecker reports healthy while the whole pipeline still
// classifies the law of excluded middle correctly.
func NewFormulaHealthChecker() *pkgserver.ProbeHealthChecker {
	return pkgserver.NewProbeHealthChecker(probeFormula, func(err error) {
		slog.Error("Health probe failed", "error", err)
	})
}

func probeFormula(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	table, err := truthtable.Generate(HealthProbeFormula, false)
	if err != nil {
		return err
	}
	if got := table.Classify(); got != truthtable.Tautology {
		return fmt.Errorf("%s classified as %s", HealthProbeFormula, got)
	}
	return nil
}
