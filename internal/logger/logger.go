package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a JSON zap logger writing to a rotating file, plus a console
// core on stderr in development.
func New(filename string, development bool) *zap.Logger {
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    50, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	level := zap.InfoLevel
	if development {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(encoder, writer, level)
	if development {
		console := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			level,
		)
		core = zapcore.NewTee(core, console)
	}

	return zap.New(core, zap.AddCaller())
}
