package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var runLogEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	MessageKey:     "message",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
}

// openRunLog returns a logger writing a verbose run trace to path. An empty
// path yields a no-op logger. The returned close func flushes and closes the
// file.
func openRunLog(path string) (*zap.SugaredLogger, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return zap.NewNop().Sugar(), func() {}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(runLogEncoderConfig),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)).Sugar()
	closeFn := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closeFn, nil
}
