package logger

import (
	"go.uber.org/zap"
)

// New creates a new zap logger based on environment. It falls back to a no-op
// logger if zap cannot build one.
func New(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}
