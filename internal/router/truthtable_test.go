package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
	"github.com/DjordjeVuckovic/truthtable/internal/dto"
	"github.com/DjordjeVuckovic/truthtable/internal/server"
)

func newTestEcho(opts ...TruthTableRouterOption) *echo.Echo {
	e := echo.New()
	e.Validator = server.NewRequestValidator()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewTruthTableRouter(e, opts...).Bind()
	return e
}

func post(t *testing.T, e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestValidateHandler(t *testing.T) {
	e := newTestEcho()

	tests := []struct {
		name     string
		body     string
		valid    bool
		kind     string
		position int
	}{
		{name: "valid", body: `{"formula":"A->(B|~C)"}`, valid: true},
		{name: "empty", body: `{"formula":""}`, kind: "empty_expression", position: 0},
		{name: "unbalanced", body: `{"formula":"(A&B"}`, kind: "unbalanced_parentheses", position: 3},
		{name: "consecutive", body: `{"formula":"A&|B"}`, kind: "consecutive_operators", position: 1},
		{name: "trailing operator", body: `{"formula":"A|"}`, kind: "missing_operand", position: 1},
		{name: "invalid symbol", body: `{"formula":"A#B"}`, kind: "invalid_symbol", position: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, e, "/api/v1/validate", tc.body)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[dto.ValidateResponse](t, rec)
			assert.Equal(t, tc.valid, resp.Valid)
			if tc.valid {
				assert.Nil(t, resp.Error)
				return
			}
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.kind, resp.Error.Kind)
			assert.Equal(t, tc.position, resp.Error.Position)
		})
	}
}

func TestTokensHandler(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/tokens", `{"formula":"~A <-> B"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[dto.TokensResponse](t, rec)
	require.Len(t, resp.Tokens, 4)
	assert.Equal(t, dto.TokenResponse{Kind: "OP", Lexeme: "~", Position: 0}, resp.Tokens[0])
	assert.Equal(t, dto.TokenResponse{Kind: "PROP", Lexeme: "A", Position: 1}, resp.Tokens[1])
	assert.Equal(t, dto.TokenResponse{Kind: "OP", Lexeme: "<->", Position: 3}, resp.Tokens[2])
	assert.Equal(t, dto.TokenResponse{Kind: "PROP", Lexeme: "B", Position: 7}, resp.Tokens[3])

	rec = post(t, e, "/api/v1/tokens", `{"formula":"A&"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_operand")
}

func TestEvaluateHandler(t *testing.T) {
	e := newTestEcho()

	t.Run("assigned and defaulted letters", func(t *testing.T) {
		rec := post(t, e, "/api/v1/evaluate", `{"formula":"A->B","assignment":{"A":true,"z":true}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[dto.EvaluateResponse](t, rec)
		assert.False(t, resp.Result)
		assert.Equal(t, map[string]bool{"A": true, "B": false}, resp.Assignment)
	})

	t.Run("right associative implication", func(t *testing.T) {
		rec := post(t, e, "/api/v1/evaluate", `{"formula":"A->B->C","assignment":{"B":true}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[dto.EvaluateResponse](t, rec).Result)
	})

	t.Run("bad assignment key", func(t *testing.T) {
		rec := post(t, e, "/api/v1/evaluate", `{"formula":"A","assignment":{"AB":true}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "assignment")
	})

	t.Run("stack error surfaces as 422", func(t *testing.T) {
		rec := post(t, e, "/api/v1/evaluate", `{"formula":"AB"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_expression")
	})
}

func TestTruthTableHandler(t *testing.T) {
	e := newTestEcho(WithMaxVariables(3))

	t.Run("ascending table", func(t *testing.T) {
		rec := post(t, e, "/api/v1/truth-table", `{"formula":"A&B"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[dto.TruthTableResponse](t, rec)
		assert.Len(t, resp.ID, 36)
		assert.Equal(t, []string{"A", "B"}, resp.Variables)
		assert.Equal(t, "contingent", resp.Classification)
		require.Len(t, resp.Rows, 4)
		require.NotNil(t, resp.Rows[3].Result)
		assert.True(t, *resp.Rows[3].Result)
		assert.Equal(t, map[string]bool{"A": true, "B": true}, resp.Rows[3].Values)
	})

	t.Run("reverse table starts with all true", func(t *testing.T) {
		rec := post(t, e, "/api/v1/truth-table", `{"formula":"A<->B","reverse":true}`)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[dto.TruthTableResponse](t, rec)
		assert.True(t, resp.Reverse)
		assert.Equal(t, 3, resp.Rows[0].Index)
	})

	t.Run("too many variables", func(t *testing.T) {
		rec := post(t, e, "/api/v1/truth-table", `{"formula":"A&B&C&D"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "at most 3")
	})

	t.Run("invalid formula", func(t *testing.T) {
		rec := post(t, e, "/api/v1/truth-table", `{"formula":"(A"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("oversized request", func(t *testing.T) {
		body := `{"formula":"` + strings.Repeat("A", 2000) + `"}`
		rec := post(t, e, "/api/v1/truth-table", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := post(t, e, "/api/v1/truth-table", `{"formula":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEquivalenceHandler(t *testing.T) {
	e := newTestEcho()

	t.Run("de morgan", func(t *testing.T) {
		rec := post(t, e, "/api/v1/equivalence", `{"left":"~(A|B)","right":"~A&~B"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[dto.EquivalenceResponse](t, rec)
		assert.True(t, resp.Equivalent)
		assert.Nil(t, resp.Counterexample)
	})

	t.Run("converse is not equivalent", func(t *testing.T) {
		rec := post(t, e, "/api/v1/equivalence", `{"left":"A->B","right":"B->A"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[dto.EquivalenceResponse](t, rec)
		assert.False(t, resp.Equivalent)
		require.NotNil(t, resp.Counterexample)
		assert.Equal(t, map[string]bool{"A": false, "B": true}, resp.Counterexample.Values)
		assert.True(t, resp.Counterexample.Left)
		assert.False(t, resp.Counterexample.Right)
	})

	t.Run("invalid side", func(t *testing.T) {
		rec := post(t, e, "/api/v1/equivalence", `{"left":"A","right":"B||"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "right formula")
	})
}
