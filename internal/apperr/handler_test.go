package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		contains []string
	}{
		{
			name:     "formula error",
			err:      fmt.Errorf("left formula: %w", NewFormula(MissingOperand, 2, "")),
			wantCode: http.StatusUnprocessableEntity,
			contains: []string{`"kind":"missing_operand"`, `"position":2`, "left formula: missing operand"},
		},
		{
			name:     "validation error",
			err:      NewFieldValidation("formula", "is required"),
			wantCode: http.StatusBadRequest,
			contains: []string{"formula: is required"},
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusNotFound, "not found"),
			wantCode: http.StatusNotFound,
			contains: []string{"not found"},
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			contains: []string{"internal server error"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			GlobalErrorHandler()(tc.err, c)

			assert.Equal(t, tc.wantCode, rec.Code)
			for _, s := range tc.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}
