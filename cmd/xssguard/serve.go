package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xssguard/pkg/config"
	"github.com/dmitrymomot/xssguard/pkg/httpserver"
	"github.com/dmitrymomot/xssguard/pkg/logger"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo site behind the output protector",
		Long: `Starts an HTTP server whose pages echo untrusted input and rely on the
render pipeline, the CSP header and the message post-processors to stay safe.

Configuration comes from XSSGUARD_* environment variables and optional dotenv files.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", "", "listen address, overrides XSSGUARD_HTTP_ADDR")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTP.Addr = addr
	}

	log := newLogger(cfg, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to initialize", logger.Error(err))
		return err
	}

	log.InfoContext(ctx, "protection configured",
		slog.Bool("scriptless", cfg.Scriptless),
		slog.Bool("lax_secondary", cfg.LaxSecondary),
		slog.Bool("protect_messages", cfg.ProtectMessages),
	)

	srv := httpserver.New(cfg.HTTP, a.routes(), httpserver.WithLogger(log.With(logger.Component("http"))))
	if err := srv.Run(ctx); err != nil {
		log.ErrorContext(ctx, "server stopped with error", logger.Error(err))
		return err
	}
	return nil
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logger.New(
		logger.WithFormat(logger.Format(cfg.Log.Format)),
		logger.WithLevel(cfg.LogLevel()),
		logger.WithOutput(out),
		logger.WithAttr(slog.String("service", "xssguard")),
		logger.WithContextExtractors(logger.RequestIDExtractor(middleware.GetReqID)),
	)
}
