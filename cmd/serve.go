package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/carbon-cli/internal/server"
)

var servePort int

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for the project form",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		calc, err := newCalculator()
		if err != nil {
			return err
		}

		srv := server.New(calc, server.Options{
			Addr:               fmt.Sprintf(":%d", cfg.Server.Port),
			RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
			TrustedProxies:     cfg.Server.TrustedProxies,
			MaxUploadBytes:     cfg.Server.MaxUploadBytes,
			AllowedOrigins:     cfg.Server.AllowedOrigins,
			SheetName:          cfg.Export.SheetName,
			Strict:             cfg.Report.Strict,
		})

		g, gctx := errgroup.WithContext(ctx)
		g.Go(srv.Start)
		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
