package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
	"github.com/DjordjeVuckovic/truthtable/internal/dto"
	"github.com/DjordjeVuckovic/truthtable/internal/eval"
	"github.com/DjordjeVuckovic/truthtable/internal/report"
	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
)

const DefaultMaxVariables = 16

type TruthTableRouter struct {
	e            *echo.Echo
	maxVariables int
}

type TruthTableRouterOption func(*TruthTableRouter)

// WithMaxVariables bounds the tables this router will enumerate.
func WithMaxVariables(n int) TruthTableRouterOption {
	return func(r *TruthTableRouter) {
		r.maxVariables = n
	}
}

func NewTruthTableRouter(e *echo.Echo, opts ...TruthTableRouterOption) *TruthTableRouter {
	r := &TruthTableRouter{
		e:            e,
		maxVariables: DefaultMaxVariables,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TruthTableRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/validate", r.validateHandler)
	g.POST("/tokens", r.tokensHandler)
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/truth-table", r.truthTableHandler)
	g.POST("/equivalence", r.equivalenceHandler)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	return c.Validate(req)
}

// plan uses a fresh planner per request since planners are not safe for
// concurrent use.
func plan(formula string) (*truthtable.Plan, error) {
	return truthtable.NewPlanner().Plan(formula)
}

func (r *TruthTableRouter) checkSize(vars truthtable.Variables) error {
	if len(vars) > r.maxVariables {
		return apperr.NewFieldValidation("formula",
			fmt.Sprintf("uses %d variables, at most %d are allowed", len(vars), r.maxVariables))
	}
	return nil
}

func (r *TruthTableRouter) validateHandler(c echo.Context) error {
	var req dto.FormulaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp := dto.ValidateResponse{Valid: true}
	if _, err := plan(req.Formula); err != nil {
		var fe *apperr.FormulaError
		if !errors.As(err, &fe) {
			return err
		}
		resp.Valid = false
		resp.Error = &dto.ErrorDetail{Kind: fe.Kind.String(), Message: fe.Message, Position: fe.Position}
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *TruthTableRouter) tokensHandler(c echo.Context) error {
	var req dto.FormulaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := plan(req.Formula)
	if err != nil {
		return err
	}

	resp := dto.TokensResponse{Formula: p.Formula, Tokens: make([]dto.TokenResponse, 0, len(p.Tokens))}
	for _, tok := range p.Tokens {
		resp.Tokens = append(resp.Tokens, dto.TokenResponse{
			Kind:     tok.Type.String(),
			Lexeme:   tok.Value,
			Position: tok.Pos,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *TruthTableRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var values eval.Assignment
	for name, v := range req.Assignment {
		if len(name) != 1 || !eval.IsProposition(name[0]) {
			return apperr.NewFieldValidation("assignment", fmt.Sprintf("%q is not a proposition letter", name))
		}
		_ = values.Set(name[0], v)
	}

	p, err := plan(req.Formula)
	if err != nil {
		return err
	}

	result, err := eval.Evaluate(p.Tokens, &values)
	if err != nil {
		return err
	}

	used := make(map[string]bool, len(p.Variables))
	for _, letter := range p.Variables {
		used[string(letter)] = values[eval.Index(letter)]
	}
	return c.JSON(http.StatusOK, dto.EvaluateResponse{Formula: p.Formula, Assignment: used, Result: result})
}

func (r *TruthTableRouter) truthTableHandler(c echo.Context) error {
	var req dto.TruthTableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := plan(req.Formula)
	if err != nil {
		return err
	}
	if err := r.checkSize(p.Variables); err != nil {
		return err
	}

	rpt := report.Generate(p.Table(req.Reverse))
	rpt.ID = uuid.NewString()
	return c.JSON(http.StatusOK, rpt)
}

func (r *TruthTableRouter) equivalenceHandler(c echo.Context) error {
	var req dto.EquivalenceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lp, err := plan(req.Left)
	if err != nil {
		return fmt.Errorf("left formula: %w", err)
	}
	rp, err := plan(req.Right)
	if err != nil {
		return fmt.Errorf("right formula: %w", err)
	}
	if err := r.checkSize(truthtable.UnionVariables(lp, rp)); err != nil {
		return err
	}

	res, err := truthtable.Compare(lp, rp)
	if err != nil {
		return err
	}

	resp := dto.EquivalenceResponse{
		Left:       res.Left,
		Right:      res.Right,
		Variables:  res.Variables.Strings(),
		Equivalent: res.Equivalent,
	}
	if ce := res.Counterexample; ce != nil {
		values := make(map[string]bool, len(ce.Values))
		for j, name := range resp.Variables {
			values[name] = ce.Values[j]
		}
		resp.Counterexample = &dto.CounterexampleResponse{Values: values, Left: ce.Left, Right: ce.Right}
	}
	return c.JSON(http.StatusOK, resp)
}
