package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/zab-bid-org/zabcli/internal/mockapi"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, log); err != nil {
		log.WithError(err).Fatal("mockapi exited with error")
	}
}

func run(ctx context.Context, log *logrus.Logger) error {
	cfg, err := mockapi.LoadConfig()
	if err != nil {
		return err
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	store := mockapi.NewStore()
	if cfg.Fixtures != "" {
		ff, err := mockapi.LoadFixtures(cfg.Fixtures)
		if err != nil {
			return fmt.Errorf("load fixtures: %w", err)
		}
		store.Seed(ff)
		log.WithField("path", cfg.Fixtures).Info("fixtures loaded")
	}

	srv := mockapi.NewServer(cfg, store, log)
	httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.Engine()}

	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()

	log.WithFields(logrus.Fields{"addr": cfg.Addr, "prefix": cfg.Prefix}).Info("mock api listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	log.Info("mock api stopped")
	return nil
}
