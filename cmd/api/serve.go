package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"people-directory/internal/adapters/auth/introspection"
	"people-directory/internal/adapters/auth/jwt"
	"people-directory/internal/adapters/moderation/apilayer"
	"people-directory/internal/adapters/moderation/cache"
	"people-directory/internal/adapters/storage"
	"people-directory/internal/domain/accounts"
	"people-directory/internal/domain/people"
	"people-directory/internal/platform/config"
	"people-directory/internal/platform/logger"
	"people-directory/internal/platform/metrics"
	"people-directory/internal/platform/password"
	"people-directory/internal/ports/auth"
	"people-directory/internal/ports/moderation"
	"people-directory/internal/router"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf, err := config.Parse()
		if err != nil {
			return errors.Wrap(err, "parse config")
		}
		if err := conf.Validate(); err != nil {
			return errors.Wrap(err, "invalid config")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, conf)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, conf *config.Config) error {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(conf.Logger.Level),
		Format: logger.ParseFormat(conf.Logger.Format),
		App:    conf.Logger.App,
	})

	m := metrics.New()

	stores, err := storage.Open(ctx, conf.Storage, log)
	if err != nil {
		return errors.Wrap(err, "open storage")
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Warn("closing storage", map[string]any{"error": err})
		}
	}()

	var censor moderation.Censorious = apilayer.NewClient(apilayer.Config{
		URL:           conf.Moderation.URL,
		APIKey:        conf.Moderation.APIKey,
		APIKeyHeader:  conf.Moderation.APIKeyHeader,
		Timeout:       conf.Moderation.Timeout,
		MaxAttempts:   conf.Moderation.MaxAttempts,
		BackoffMin:    conf.Moderation.BackoffMin,
		BackoffMax:    conf.Moderation.BackoffMax,
		RatePerSecond: conf.Moderation.RatePerSecond,
		Burst:         conf.Moderation.Burst,
	}, log, m)

	if conf.Moderation.CacheSize > 0 {
		censor = cache.NewCensorious(censor, conf.Moderation.CacheSize, conf.Moderation.CacheTTL, m)
	}

	tokens := jwt.NewService(jwt.Config{
		SigningKey: conf.Auth.SigningKey,
		Issuer:     conf.Auth.Issuer,
		Audience:   conf.Auth.Audience,
		TTL:        conf.Auth.TokenTTL,
	})

	var verifier auth.AuthVerifier = tokens
	if conf.Auth.IntrospectionURL != "" {
		remote := introspection.NewVerifier(introspection.NewClient(introspection.Config{
			URL:          conf.Auth.IntrospectionURL,
			APIKey:       conf.Auth.IntrospectionAPIKey,
			APIKeyHeader: conf.Auth.IntrospectionAPIKeyHeader,
			Timeout:      conf.Auth.IntrospectionTimeout,
		}))
		verifier = introspection.Chain{tokens, remote}
	}

	hasher := password.NewHasher(password.Params{
		Time:      conf.Password.Time,
		MemoryKiB: conf.Password.MemoryKiB,
		Threads:   conf.Password.Threads,
	})

	peopleSvc := people.NewService(stores.People, censor, people.Options{
		PlainModeration: !conf.Moderation.UseBackoff,
		Logger:          log,
		Metrics:         m,
	})
	accountsSvc := accounts.NewService(stores.Accounts, hasher, tokens, log, m)

	h := router.NewRouter(router.Options{
		People:             peopleSvc,
		Accounts:           accountsSvc,
		AuthVerifier:       verifier,
		Logger:             log,
		Metrics:            m,
		CORSAllowedOrigins: conf.HTTP.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         conf.HTTP.Address,
		Handler:      h,
		ReadTimeout:  conf.HTTP.ReadTimeout,
		WriteTimeout: conf.HTTP.WriteTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"address": conf.HTTP.Address, "storage": conf.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		if err != nil {
			return errors.Wrap(err, "server error")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	return nil
}
