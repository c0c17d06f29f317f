// Package logging builds the zap logger used by the profilecss CLI.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted by New
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// New returns a console logger. Messages below error go to out and errors to
// errOut; "none" discards everything.
func New(level string, useColors bool, out, errOut io.Writer) (*zap.Logger, error) {
	var lowest zapcore.Level
	switch level {
	case LevelNone:
		return zap.NewNop(), nil
	case LevelNormal, "":
		lowest = zapcore.InfoLevel
	case LevelDebug:
		lowest = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (want none, normal or debug)", level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if useColors {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoder := zapcore.NewConsoleEncoder(ec)

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lowest <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), lowPriority),
		zapcore.NewCore(encoder.Clone(), zapcore.Lock(zapcore.AddSync(errOut)), highPriority),
	)
	return zap.New(core).Named("profilecss"), nil
}
