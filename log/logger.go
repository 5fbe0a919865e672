package log

import (
	"log"
	"os"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger installs the global zap logger. Logs always go to a colorable
// console; a JSON file sink is added when path is non-empty, and errors are
// forwarded to Sentry when a DSN is configured.
func NewLogger(path string, debug bool, sentryDsn string) {
	pe := zap.NewProductionEncoderConfig()
	pe.EncodeTime = zapcore.ISO8601TimeEncoder
	pe.MessageKey = "message"
	pe.TimeKey = "time"

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	cores := make([]zapcore.Core, 0, 2)
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal(err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(pe), zapcore.AddSync(f), level))
	}

	pe.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(pe), zapcore.AddSync(colorable.NewColorableStdout()), level))

	logger := zap.New(zapcore.NewTee(cores...))

	if sentryDsn != "" {
		logger = modifyToSentryLogger(logger, sentryDsn)
	}

	zap.ReplaceGlobals(logger)
}

func modifyToSentryLogger(logger *zap.Logger, dsn string) *zap.Logger {
	cfg := zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
		Tags: map[string]string{
			"component": "actions",
		},
	}
	core, err := zapsentry.NewCore(cfg, zapsentry.NewSentryClientFromDSN(dsn))

	logger = logger.With(zapsentry.NewScope())

	if err != nil {
		logger.Warn("failed to init zapsentry", zap.Error(err))
	}
	return zapsentry.AttachCoreToLogger(core, logger)
}
