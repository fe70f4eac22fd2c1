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

	"golang.org/x/sync/errgroup"

	"clubledger/internal/platform/config"
	"clubledger/internal/platform/httpserver"
	"clubledger/internal/platform/logger"
	httptransport "clubledger/internal/transport/http"
	"clubledger/pkg/platform/secrets"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-admin-token" {
		if err := hashAdminToken(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	app, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	router := httptransport.NewRouter(httptransport.Deps{
		Clubs:          app.clubs,
		Validator:      app.validator,
		AdminTokenHash: cfg.AdminTokenHash,
		Metrics:        app.metrics,
		RateLimiter:    app.limiter,
		Ready:          app.ready,
		Logger:         log,
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting clubledger", "addr", cfg.Addr, "backend", app.backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	if app.relay != nil {
		g.Go(func() error {
			return app.relay.Run(gctx)
		})
	} else {
		log.Info("no audit sink configured, outbox relay disabled")
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info("server stopped")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// hashAdminToken prints the bcrypt hash to put in ADMIN_TOKEN_HASH. With no
// argument a fresh token is generated and printed first.
func hashAdminToken(args []string) error {
	token := ""
	if len(args) > 0 {
		token = args[0]
	} else {
		generated, err := secrets.Generate()
		if err != nil {
			return err
		}
		token = generated
		fmt.Printf("token: %s\n", token)
	}
	hash, err := secrets.Hash(token)
	if err != nil {
		return err
	}
	fmt.Printf("ADMIN_TOKEN_HASH=%s\n", hash)
	return nil
}
