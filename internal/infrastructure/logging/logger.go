// Package logging builds the structured logger used by the CLI.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ersonp/archiquiz/internal/infrastructure/config"
)

// New returns a zap logger for the given settings. Mode "off" yields a no-op
// logger. Output goes to stderr so it never mixes with quiz output.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	switch strings.ToLower(cfg.Mode) {
	case "off":
		return zap.NewNop(), nil
	case "prod", "production":
		zc = zap.NewProductionConfig()
	default:
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		zc.Level = level
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
