package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/truthtable/internal/eval"
	"github.com/DjordjeVuckovic/truthtable/pkg/config/env"
	"github.com/DjordjeVuckovic/truthtable/pkg/utils"
)

const (
	DefaultPort              = "8080"
	DefaultMaxTableVariables = 16
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// MaxTableVariables bounds the truth tables served over HTTP. A formula
	// with n variables produces 2^n rows.
	MaxTableVariables int
	LogLevel          slog.Level
}

func LoadConfig(dotEnvPath string) (*Config, error) {
	if err := env.LoadDotEnv(dotEnvPath, false); err != nil {
		return nil, err
	}

	port := env.String("PORT", DefaultPort)
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(env.String("CORS_ORIGINS", ""))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxVars, err := env.Int("MAX_TABLE_VARIABLES", DefaultMaxTableVariables)
	if err != nil {
		return nil, err
	}
	if maxVars < 1 || maxVars > eval.MaxVars {
		return nil, fmt.Errorf("MAX_TABLE_VARIABLES must be between 1 and %d", eval.MaxVars)
	}

	return &Config{
		Port:              port,
		UseHttp2:          env.Bool("USE_HTTP2", false),
		CorsOrigins:       origins,
		MaxTableVariables: maxVars,
		LogLevel:          env.LogLevel(env.String("LOG_LEVEL", "info")),
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
