package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bundesland.at/internal/app"
	"bundesland.at/internal/logging"
	"bundesland.at/internal/site"
)

const shutdownTimeout = 10 * time.Second

// serve runs the HTTP server until ctx is cancelled or the process receives
// SIGINT or SIGTERM.
func serve(ctx context.Context, application *app.Application) error {
	s, err := site.New(application)
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(s, application.Logger, "site")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      s.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logging.LogOperation(application.Logger, "server_starting",
			slog.String("addr", srv.Addr),
			slog.String("env", application.Config.Env.String()))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logging.LogError(application.Logger, "server stopped", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logging.LogOperation(application.Logger, "server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
