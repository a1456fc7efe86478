package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	actx "go.hackfix.me/agrodiag/app/context"
	"go.hackfix.me/agrodiag/web/server"
)

// Serve starts the web server.
type Serve struct {
	Address string `arg:"" optional:"" help:"[host]:port to listen on. Default: the configured server address."`
}

// Run the serve command.
func (c *Serve) Run(appCtx *actx.Context) error {
	srv := server.New(appCtx, c.Address)
	logger := appCtx.Logger

	// Gracefully shutdown the server if a process signal is received, or the
	// main context is done.
	srvDone := make(chan error, 1)
	go func() {
		srvErr := srv.ListenAndServe()
		logger.Debug("web server shutdown")
		srvDone <- srvErr
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case s := <-sigCh:
		logger.Debug("process received signal", "signal", s)
	case <-appCtx.Ctx.Done():
		logger.Debug("app context is done")
	case srvErr := <-srvDone:
		if srvErr != nil && !errors.Is(srvErr, http.ErrServerClosed) {
			return fmt.Errorf("web server error: %w", srvErr)
		}
		return nil
	}

	timeout := appCtx.Config.Server.ShutdownTimeout.V
	ctx, cancel := context.WithTimeout(context.WithoutCancel(appCtx.Ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("timed out waiting for connections to close", "timeout", timeout)
			if cerr := srv.Close(); cerr != nil {
				return fmt.Errorf("failed closing web server connections: %w", cerr)
			}
			return nil
		}
		return fmt.Errorf("failed shutting down web server: %w", err)
	}

	return nil
}
