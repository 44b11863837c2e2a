package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "cascade.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logger       logr.Logger = logr.Discard()
	zapLogger    *zap.Logger
)

// Configure points the shared logger at the given file. Empty values fall
// back to the default path. Directories are created automatically when
// missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()

	target := strings.TrimSpace(path)
	if target == "" {
		target = defaultLogFile
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			target = defaultLogFile
		}
	}

	sink, err := os.OpenFile(target, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "event"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(sink),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)

	zl := zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
	if zapLogger != nil {
		_ = zapLogger.Sync()
	}
	zapLogger = zl
	logger = zapr.NewLogger(zl)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Error(err, "error")
}

// Warn records a recoverable failure with structured context.
func Warn(msg string, keysAndValues ...interface{}) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Info(msg, append([]interface{}{"severity", "warn"}, keysAndValues...)...)
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	mu.Lock()
	enabled := traceEnabled
	l := logger
	mu.Unlock()
	if !enabled {
		return
	}
	kv := make([]interface{}, 0, len(payload)*2)
	for k, v := range payload {
		kv = append(kv, k, v)
	}
	l.Info(event, kv...)
}

// Logger exposes the shared logr.Logger for packages that carry their own
// structured context.
func Logger() logr.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Sync flushes buffered log entries. Safe to call when logging was never
// configured.
func Sync() {
	mu.Lock()
	zl := zapLogger
	mu.Unlock()
	if zl != nil {
		_ = zl.Sync()
	}
}
