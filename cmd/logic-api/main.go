package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/greek-cheese/casio-logic-calculator/internal/router"
	"github.com/greek-cheese/casio-logic-calculator/internal/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	s := server.NewServer(echo.New(), cfg)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Logic Calculator API is running")
	})

	router.NewExpressionRouter(s.Echo, cfg.MaxTableVariables).Bind()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
