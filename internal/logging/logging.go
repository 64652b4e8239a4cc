// Package logging constructs the zap loggers used by the command.
package logging

import (
	"go.uber.org/zap"
)

// New returns a zap logger writing to standard error. When debug is
// true, uses the development config (human-readable, debug level);
// otherwise the production config (JSON, info level).
func New(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Standard output is reserved for query results.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
