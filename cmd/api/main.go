package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "property_booking/internal/adapters/http_server"
	"property_booking/internal/adapters/observability"
	"property_booking/internal/adapters/payment"
	"property_booking/internal/app"
	"property_booking/internal/domain"
	"property_booking/internal/shared"
	"property_booking/internal/storage/memory"
	mysqlrepo "property_booking/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	props, reviews, closeStore := openStores(cfg)
	defer closeStore()

	q := app.NewQueryService(props, reviews)
	b := app.NewBookingService(app.NewBookingValidator(), payment.NewSimulated(cfg.BookingDelay))

	// http
	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	srv := server.New(server.Options{RequestTimeout: cfg.RequestTimeout, CORSOrigins: cfg.CORSOrigins})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, B: b})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("data_source", cfg.DataSource).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("API stopped")
}

// openStores picks the dataset behind the API. The returned func releases
// whatever was opened.
func openStores(cfg shared.Config) (domain.PropertyStore, domain.ReviewStore, func()) {
	if cfg.DataSource == shared.DataSourceMySQL {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo := mysqlrepo.New(db)
		return repo, repo, func() { _ = db.Close() }
	}

	store, err := memory.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load sample dataset failed")
	}
	log.Info().Int("properties", store.Len()).Msg("sample dataset loaded")
	return store, store, func() {}
}
