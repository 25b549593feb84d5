package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teamflow-tracker/internal/config"
	memberinfra "teamflow-tracker/internal/infrastructure/member"
	projectinfra "teamflow-tracker/internal/infrastructure/project"
	taskinfra "teamflow-tracker/internal/infrastructure/task"
	"teamflow-tracker/internal/logging"
	"teamflow-tracker/internal/seed"
	"teamflow-tracker/internal/usecase/tracker"
)

// app はコマンド間で共有する依存関係。
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	logCloser io.Closer
	manager   *tracker.Manager
}

// newApp は --config の設定を読み込み、ロガーとインメモリの Manager を組み立てる。
func newApp(cmd *cobra.Command) (*app, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(cfg.AppEnv, cfg.Log)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		logCloser: logCloser,
		manager:   newManager(logger),
	}, nil
}

func newManager(logger *zap.Logger) *tracker.Manager {
	return tracker.NewManager(
		projectinfra.NewMemoryProjectRepository(),
		memberinfra.NewMemoryMemberRepository(),
		taskinfra.NewMemoryTaskRepository(),
		logger,
	)
}

// close はバッファを書き出してからログファイルを閉じる。
func (a *app) close() error {
	// stderr への Sync は環境によって失敗するため無視する
	_ = a.logger.Sync()
	return a.logCloser.Close()
}

func loadSeed(ctx context.Context, m *tracker.Manager, path string) error {
	doc, err := seed.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	if err := seed.Apply(ctx, m, doc); err != nil {
		return fmt.Errorf("apply seed %s: %w", path, err)
	}
	return nil
}
