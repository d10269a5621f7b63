// Command inputd runs the pointer-input dispatcher daemon: browsing
// contexts are created from declarative page specs and driven with
// WebDriver BiDi-shaped action payloads over a local HTTP surface.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/bidinput/pkg/capture"
	"github.com/odvcencio/bidinput/pkg/config"
	"github.com/odvcencio/bidinput/pkg/observability"
	"github.com/odvcencio/bidinput/pkg/storage/sqlite"
)

func main() {
	if err := run(); err != nil {
		slog.Error("inputd exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := observability.NewLogger("inputd", observability.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TraceEnabled {
		tp, err := observability.NewTracerProvider("inputd")
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Warn("tracer shutdown failed", slog.String("error", err.Error()))
			}
		}()
	}

	recorder := capture.NewRecorder()
	sinks := capture.Fanout{recorder}

	if cfg.Sink == config.SinkNATS {
		natsSink, err := capture.NewNATSSink(capture.NATSConfig{
			URL:  cfg.NATSURL,
			Name: "inputd",
		})
		if err != nil {
			return err
		}
		defer natsSink.Close()
		sinks = append(sinks, natsSink)
		log.Info("publishing events to nats", slog.String("url", cfg.NATSURL))
	}

	if cfg.EventDBPath != "" {
		store, err := sqlite.Open(cfg.EventDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		sinks = append(sinks, store)
		log.Info("journaling events", slog.String("path", cfg.EventDBPath))
	}

	server := NewServer(log, recorder, sinks)
	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("listening", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
