// Package log installs the process-wide zap logger. It is blank-imported
// from cmd/main.go so zap.L() is usable before configuration is read.
package log

import "go.uber.org/zap"

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
