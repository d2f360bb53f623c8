// Package httpserver runs the xssguard HTTP handler until its context is
// cancelled and then drains in-flight requests within the configured
// shutdown timeout.
//
//	srv := httpserver.New(cfg.HTTP, router, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Health returns a liveness/readiness handler suitable for /healthz.
package httpserver
