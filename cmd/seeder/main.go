package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"property_booking/internal/adapters/feed"
	"property_booking/internal/adapters/observability"
	"property_booking/internal/app"
	"property_booking/internal/shared"
	"property_booking/internal/storage/memory"
	mysqlrepo "property_booking/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("feed", cfg.FeedURL).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	seed := app.NewSeedService(mysqlrepo.New(db))

	reviews, err := memory.SampleReviews()
	if err != nil {
		log.Fatal().Err(err).Msg("load sample reviews failed")
	}
	if err := seed.SeedReviews(ctx, reviews); err != nil {
		log.Fatal().Err(err).Msg("seed reviews failed")
	}

	// 2) one job per listing; the position fixes the listing's id
	var jobs []func(context.Context) error
	if cfg.FeedURL != "" {
		client, err := feed.New(cfg.FeedURL, cfg.FeedKey, cfg.FeedRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize feed client")
		}
		raw, err := client.FetchListings(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("fetch listings failed")
		}
		for i, entry := range raw {
			jobs = append(jobs, func(ctx context.Context) error { return seed.SeedListing(ctx, i, entry) })
		}
	} else {
		props, err := memory.SampleProperties()
		if err != nil {
			log.Fatal().Err(err).Msg("load sample properties failed")
		}
		store, err := memory.New(props, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("assign property ids failed")
		}
		all, _ := store.All(ctx)
		for i, p := range all {
			jobs = append(jobs, func(ctx context.Context) error { return seed.SeedProperty(ctx, i, p) })
		}
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for i, job := range jobs {
		i, job := i, job
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := job(ctx); err != nil {
				failed.Add(1)
				log.Warn().Int("position", i).Err(err).Msg("seed failed")
				return
			}
			log.Debug().Int("position", i).Msg("seed ok")
		}()
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Fatal().Int32("failed", n).Int("total", len(jobs)).Msg("seeding finished with failures")
	}
	log.Info().Int("listings", len(jobs)).Int("reviews", len(reviews)).Msg("seeding completed")
}
