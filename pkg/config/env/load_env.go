package env

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH
// overrides the default location when set. A missing file is reported to
// the caller, who decides whether that matters.
func LoadDotEnv(defaultPath string) error {
	envPath := defaultPath
	if p := os.Getenv("ENV_PATH"); p != "" {
		envPath = p
	}

	return godotenv.Load(envPath)
}
