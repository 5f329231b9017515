package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/greek-cheese/casio-logic-calculator/internal/apperr"
	"github.com/greek-cheese/casio-logic-calculator/internal/dto"
	"github.com/greek-cheese/casio-logic-calculator/internal/eval"
	"github.com/greek-cheese/casio-logic-calculator/internal/operator"
	"github.com/greek-cheese/casio-logic-calculator/internal/parser"
	"github.com/greek-cheese/casio-logic-calculator/internal/truth"
)

// ExpressionRouter binds the expression endpoints. maxVariables bounds
// truth-table enumeration, since its cost is exponential in the number
// of variables.
type ExpressionRouter struct {
	e            *echo.Echo
	maxVariables int
}

func NewExpressionRouter(e *echo.Echo, maxVariables int) *ExpressionRouter {
	if maxVariables <= 0 || maxVariables > truth.MaxVariables {
		maxVariables = truth.MaxVariables
	}
	return &ExpressionRouter{
		e:            e,
		maxVariables: maxVariables,
	}
}

func (r *ExpressionRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/evaluate", r.evaluateHandler)
	v1.POST("/table", r.tableHandler)
	v1.GET("/operators", r.operatorsHandler)
}

func (r *ExpressionRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Expression) == "" {
		return apperr.NewValidation("expression is required")
	}

	node, err := parser.ParseString(req.Expression)
	if err != nil {
		return err
	}

	result, err := eval.Evaluate(node, req.Assignment)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		Expression: req.Expression,
		Result:     result,
		Variables:  eval.Variables(node),
	})
}

func (r *ExpressionRouter) tableHandler(c echo.Context) error {
	var req dto.TableRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Expression) == "" {
		return apperr.NewValidation("expression is required")
	}

	node, err := parser.ParseString(req.Expression)
	if err != nil {
		return err
	}

	vars := eval.Variables(node)
	if len(vars) > r.maxVariables {
		return apperr.NewValidation("expression has too many variables to enumerate")
	}

	resp := dto.TableResponse{
		Expression: req.Expression,
		Variables:  vars,
	}

	if len(vars) == 0 {
		result, err := eval.Evaluate(node, nil)
		if err != nil {
			return err
		}
		bit := toBit(result)
		resp.Result = &bit
		return c.JSON(http.StatusOK, resp)
	}

	table, err := truth.Enumerate(node, vars)
	if err != nil {
		return err
	}

	resp.Rows = make([]dto.TableRow, len(table.Rows))
	for i, row := range table.Rows {
		resp.Rows[i] = dto.TableRow{
			Assignment: table.Assignment(i),
			Result:     toBit(row.Result),
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (r *ExpressionRouter) operatorsHandler(c echo.Context) error {
	entries := operator.Table()
	infos := make([]dto.OperatorInfo, len(entries))
	for i, e := range entries {
		infos[i] = dto.OperatorInfo{
			Symbol:     e.Symbol,
			Precedence: e.Precedence,
			Fixity:     e.Fixity.String(),
		}
	}
	return c.JSON(http.StatusOK, infos)
}

func toBit(v bool) int {
	if v {
		return 1
	}
	return 0
}
