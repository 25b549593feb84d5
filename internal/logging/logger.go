// Package logging は zap ロガーを組み立てる。
// ファイルが指定された場合は lumberjack でローテーションしながら JSON で書き出す。
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"teamflow-tracker/internal/config"
)

// New はアプリケーションのロガーを生成する。
// production では JSON、それ以外では人間向けのコンソール形式で stderr に出力する。
// 返す io.Closer はログファイルを閉じる。ファイル出力がない場合は何もしない。
func New(appEnv string, cfg config.LogConfig) (*zap.Logger, io.Closer, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var zcfg zap.Config
	if appEnv == config.EnvProduction {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	if cfg.File == "" {
		return logger, nopCloser{}, nil
	}

	rotator := newRotator(cfg)
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotator),
		level,
	)
	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	})), rotator, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newRotator(cfg config.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge, // days
		Compress:   cfg.Compress,
	}
}
