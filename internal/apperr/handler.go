package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greek-cheese/casio-logic-calculator/internal/parser"
	"github.com/greek-cheese/casio-logic-calculator/internal/token"
)

// GlobalErrorHandler maps errors escaping a handler to JSON responses.
// Scan and parse errors are the user's fault and become 400s; anything
// unrecognized is logged and hidden behind a 500.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var se *token.ScanError
		if errors.As(err, &se) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": se.Error(), "title": "lex error"})
			return
		}

		var pe *parser.ParseError
		if errors.As(err, &pe) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": pe.Error(), "title": "parse error"})
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
