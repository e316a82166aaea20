package logger

import (
	"go.uber.org/zap"
)

var l = zap.NewNop()

// Init 初始化全局 logger；mode=release 使用生产配置
func Init(mode string) error {
	var (
		lg  *zap.Logger
		err error
	)
	if mode == "release" {
		lg, err = zap.NewProduction()
	} else {
		lg, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	l = lg
	return nil
}

// L 返回全局 logger
func L() *zap.Logger { return l }

func Debug(msg string, fields ...zap.Field) { l.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { l.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { l.Fatal(msg, fields...) }

// Sync flush 缓冲日志
func Sync() { _ = l.Sync() }
