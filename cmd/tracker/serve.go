package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpiface "teamflow-tracker/internal/interface/http"
)

func serveCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the tracker HTTP API.

Examples:
  tracker serve
  tracker serve --config tracker.yaml --seed seed.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if seedPath == "" {
				seedPath = a.cfg.SeedFile
			}
			if seedPath != "" {
				if err := loadSeed(cmd.Context(), a.manager, seedPath); err != nil {
					return err
				}
				a.logger.Info("seed loaded", zap.String("file", seedPath))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "seed file (YAML) loaded before serving")

	return cmd
}

// serve は ctx がキャンセルされるまで API を提供し、その後 graceful shutdown する。
func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.HTTP.Addr,
		Handler:      httpiface.NewRouter(a.manager, a.logger),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("tracker listening", zap.String("addr", srv.Addr), zap.String("env", a.cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()

		a.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
