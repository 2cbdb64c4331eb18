// Package observability builds the zap logger. The terminal is owned by the
// editor, so output goes only to a rotating file or nowhere.
package observability

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/tilecut/config"
)

const rootName = "tilecut"

// New returns a logger writing to cfg.File through lumberjack rotation.
// An empty File yields a no-op logger.
func New(cfg config.LoggerConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})

	core := zapcore.NewCore(encoder(cfg.Format), writer, level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named(rootName), nil
}

func encoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	if strings.EqualFold(format, "console") {
		ec.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(name + ".")
		}
		return zapcore.NewConsoleEncoder(ec)
	}

	return zapcore.NewJSONEncoder(ec)
}

// Sync flushes l, ignoring the errors some platforms return for unsyncable files
func Sync(l *zap.Logger) error {
	if err := l.Sync(); err != nil {
		msg := err.Error()
		if strings.Contains(msg, "invalid argument") || strings.Contains(msg, "operation not supported") {
			return nil
		}
		return err
	}
	return nil
}
