// Command gitdrills is a small CLI over the drill fixture catalog.
//
// Usage:
//
//	gitdrills list
//	gitdrills show branching valid_login --output yaml
//	gitdrills check my-fixtures.yaml
//	gitdrills divide 10 2
package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/patrickwarner/gitdrills/internal/config"
	"github.com/patrickwarner/gitdrills/internal/observability"
)

func main() {
	logger := observability.NewConsoleLogger(zapcore.Lock(os.Stderr))

	if err := newRootCmd(config.Load()).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
