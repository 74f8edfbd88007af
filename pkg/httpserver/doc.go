// Package httpserver runs an http.Handler with configurable timeouts and a
// graceful shutdown tied to a context.
//
// Run binds the listener, logs the bound address and serves until the
// context is cancelled, then drains in-flight requests within the shutdown
// timeout. Signal handling belongs to the caller:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler serve the probe endpoints. Bind and
// serve failures wrap ErrStart and drain failures wrap ErrShutdown.
package httpserver
