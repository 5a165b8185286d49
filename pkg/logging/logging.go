package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger stays a no-op until Initialize is called, so library code may log freely.
var (
	Logger     *zap.SugaredLogger = zap.NewNop().Sugar()
	fileHandle *os.File
)

/*
Initialize tees a console core with a file core writing to <dir>/log.
Levels follow zapcore numbering: -1 debug, 0 info, ... 5 fatal.
*/
func Initialize(dir string, consoleLevel, fileLevel int) error {
	if err := Close(); err != nil {
		return err
	}
	consoleEnc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	consoleCore := zapcore.NewCore(
		consoleEnc,
		zapcore.Lock(os.Stderr),
		zapcore.Level(consoleLevel),
	)

	fileEncCfg := zap.NewProductionEncoderConfig()
	fileEncCfg.TimeKey = "ts"
	fileEncCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileEncCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	fileEnc := zapcore.NewConsoleEncoder(fileEncCfg)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	fileHandle = f
	fileCore := zapcore.NewCore(
		fileEnc,
		zapcore.AddSync(io.Writer(f)),
		zapcore.Level(fileLevel),
	)

	core := zapcore.NewTee(consoleCore, fileCore)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	Logger = logger.Sugar()
	return nil
}

func Close() error {
	_ = Logger.Sync()
	Logger = zap.NewNop().Sugar()
	if fileHandle != nil {
		err := fileHandle.Close()
		fileHandle = nil
		return err
	}
	return nil
}
