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

	"github.com/greek-cheese/casio-logic-calculator/internal/apperr"
	"github.com/greek-cheese/casio-logic-calculator/internal/dto"
)

func newTestServer(maxVariables int) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewExpressionRouter(e, maxVariables).Bind()
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEvaluateHandler(t *testing.T) {
	e := newTestServer(0)

	rec := postJSON(e, "/v1/evaluate", `{"expression":"A AND B","assignment":{"A":true,"B":false}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Result)
	assert.Equal(t, []string{"A", "B"}, resp.Variables)
}

func TestEvaluateHandler_UnassignedVariablesDefaultFalse(t *testing.T) {
	e := newTestServer(0)

	rec := postJSON(e, "/v1/evaluate", `{"expression":"NOT A OR B"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result)
}

func TestEvaluateHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing expression", body: `{}`},
		{name: "blank expression", body: `{"expression":"   "}`},
		{name: "lex error", body: `{"expression":"A & B"}`},
		{name: "parse error", body: `{"expression":"A AND"}`},
		{name: "unterminated group", body: `{"expression":"(A OR B"}`},
	}

	e := newTestServer(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(e, "/v1/evaluate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTableHandler(t *testing.T) {
	e := newTestServer(0)

	rec := postJSON(e, "/v1/table", `{"expression":"(A XOR B) IFF C"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"A", "B", "C"}, resp.Variables)
	require.Len(t, resp.Rows, 8)
	assert.Nil(t, resp.Result)

	// counter value 0b101: A=1 B=0 C=1 gives 1
	row := resp.Rows[5]
	assert.True(t, row.Assignment["A"])
	assert.False(t, row.Assignment["B"])
	assert.True(t, row.Assignment["C"])
	assert.Equal(t, 1, row.Result)
}

func TestTableHandler_ConstantExpression(t *testing.T) {
	e := newTestServer(0)

	rec := postJSON(e, "/v1/table", `{"expression":"TRUE AND FALSE"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Rows)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 0, *resp.Result)
}

func TestTableHandler_VariableBound(t *testing.T) {
	e := newTestServer(2)

	rec := postJSON(e, "/v1/table", `{"expression":"A AND B AND C"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOperatorsHandler(t *testing.T) {
	e := newTestServer(0)

	req := httptest.NewRequest(http.MethodGet, "/v1/operators", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []dto.OperatorInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 6)
	assert.Equal(t, "NOT", infos[0].Symbol)
	assert.Equal(t, "prefix", infos[0].Fixity)
	assert.Equal(t, "IFF", infos[5].Symbol)
	assert.Equal(t, 6, infos[5].Precedence)
}
