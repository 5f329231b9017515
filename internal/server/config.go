package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/greek-cheese/casio-logic-calculator/internal/truth"
	"github.com/greek-cheese/casio-logic-calculator/pkg/config/env"
	"github.com/greek-cheese/casio-logic-calculator/pkg/utils"
)

const defaultMaxTableVariables = 16

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string

	// MaxTableVariables bounds truth-table requests; enumeration cost is
	// 2^n in the variable count.
	MaxTableVariables int
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv("cmd/logic-api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	maxVars := defaultMaxTableVariables
	if raw := os.Getenv("MAX_TABLE_VARIABLES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > truth.MaxVariables {
			return nil, fmt.Errorf("invalid MAX_TABLE_VARIABLES %q: must be 1..%d", raw, truth.MaxVariables)
		}
		maxVars = n
	}

	var origins []string
	if corsOriginsEnv := os.Getenv("CORS_ORIGINS"); corsOriginsEnv != "" {
		origins = strings.Split(corsOriginsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		origins = utils.RemoveEmptyStrings(origins)
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:              port,
		UseHttp2:          useHttp2,
		CorsOrigins:       origins,
		MaxTableVariables: maxVars,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
