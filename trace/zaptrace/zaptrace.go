// Package zaptrace sends lender trace messages to a zap logger.
package zaptrace

import (
	"github.com/jake-scott/go-lender"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TraceFunc returns a lender.TraceFunc that writes each trace message to
// logger at the given level.
//
// Example:
//
//	logger, _ := zap.NewDevelopment()
//	l := lender.Trace(src, lender.WithTraceFunc(zaptrace.TraceFunc(logger, zap.DebugLevel)))
func TraceFunc(logger *zap.Logger, level zapcore.Level) lender.TraceFunc {
	sugar := logger.WithOptions(zap.AddCallerSkip(2)).Sugar()
	return func(format string, v ...any) {
		sugar.Logf(level, format, v...)
	}
}
