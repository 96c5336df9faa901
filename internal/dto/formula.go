package dto

import "github.com/DjordjeVuckovic/truthtable/internal/report"

// MaxRequestFormula only guards the request size. Formula length rules are
// enforced by the formula validator so they surface with their error kind.
const MaxRequestFormula = 1024

type FormulaRequest struct {
	Formula string `json:"formula" validate:"max=1024"`
}

type EvaluateRequest struct {
	Formula string `json:"formula" validate:"max=1024"`
	// Assignment maps single letters to values. Missing letters are false.
	Assignment map[string]bool `json:"assignment"`
}

type TruthTableRequest struct {
	Formula string `json:"formula" validate:"max=1024"`
	Reverse bool   `json:"reverse"`
}

type EquivalenceRequest struct {
	Left  string `json:"left" validate:"max=1024"`
	Right string `json:"right" validate:"max=1024"`
}

type ErrorDetail struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Position int    `json:"position"`
}

type ValidateResponse struct {
	Valid bool         `json:"valid"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type TokenResponse struct {
	Kind     string `json:"kind"`
	Lexeme   string `json:"lexeme"`
	Position int    `json:"pos"`
}

type TokensResponse struct {
	Formula string          `json:"formula"`
	Tokens  []TokenResponse `json:"tokens"`
}

type EvaluateResponse struct {
	Formula    string          `json:"formula"`
	Assignment map[string]bool `json:"assignment"`
	Result     bool            `json:"result"`
}

type TruthTableResponse = report.Report

type CounterexampleResponse struct {
	Values map[string]bool `json:"values"`
	Left   bool            `json:"left"`
	Right  bool            `json:"right"`
}

type EquivalenceResponse struct {
	Left           string                  `json:"left"`
	Right          string                  `json:"right"`
	Variables      []string                `json:"variables"`
	Equivalent     bool                    `json:"equivalent"`
	Counterexample *CounterexampleResponse `json:"counterexample,omitempty"`
}
