package pkg

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全局结构化日志
var Log = zap.NewNop()

// InitLogger 初始化 zap：控制台可读输出 + 文件 JSON 输出（带轮转）
func InitLogger(logLevel, logFile string) error {
	if logFile == "" {
		logFile = "server.log"
	}

	level := zapcore.InfoLevel
	if err := level.Set(logLevel); err != nil && logLevel != "" {
		return err
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     7, // 天
		Compress:   true,
	})

	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(os.Stdout), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), fileWriter, level),
	)

	Log = zap.New(core, zap.AddCaller())
	return nil
}
