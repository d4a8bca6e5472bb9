package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/amandhingra1/charzdev-ev/auth"
	"github.com/amandhingra1/charzdev-ev/config"
	eventcontroller "github.com/amandhingra1/charzdev-ev/controllers/events"
	"github.com/amandhingra1/charzdev-ev/routes"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/amandhingra1/charzdev-ev/whatsapp"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port != "" {
		cfg.Port = port
	}
	if seedFile != "" {
		cfg.SeedFile = seedFile
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if cfg.GeneratedSecret {
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}

	seed, err := store.LoadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	s := store.New(seed)

	gate := auth.NewGate(
		auth.Delayed{
			Next:  auth.FixedCredentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword},
			Delay: cfg.LoginDelay,
		},
		auth.WithTTL(cfg.SessionTTL),
		auth.WithLogger(logger.Named("auth")),
	)
	hub := eventcontroller.NewHub(s, logger.Named("events"))

	engine, err := routes.NewEngine(routes.Deps{
		Store:   s,
		Gate:    gate,
		Cookies: auth.CookieConfig{Secret: cfg.SessionSecret, Secure: cfg.SecureCookies},
		Contact: whatsapp.Contact{Number: cfg.WhatsAppNumber},
		Hub:     hub,
	}, logger.Named("http"), cfg.CORSOrigins)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("server running", zap.String("addr", srv.Addr),
			zap.Int("products", len(s.Products())), zap.Int("reviews", len(s.Reviews())))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
