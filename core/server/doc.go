// Package server wraps http.Server with configuration from the environment,
// production timeouts and graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Start binds the listener before serving, so address errors surface at once and
// Addr reports the real port when configured with ":0". Run adapts the server to
// errgroup: it serves until the context is canceled, then shuts down within
// SERVER_SHUTDOWN_TIMEOUT.
//
// TLS is enabled when SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are both set.
package server
