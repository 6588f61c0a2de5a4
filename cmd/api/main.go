package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/csv"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/rest"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/spotify"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/sqlite"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/config"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/services"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/worker"
)

func main() {
	configPath := flag.String("config", "configs/fightsongs.yaml", "path to the YAML config")
	flag.Parse()

	// 1. Configuration
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN api: could not read .env: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	settings, err := cfg.Settings()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	// 2. Driven adapters
	var repo ports.SongRepository
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		dbAdapter, err := sqlite.NewAdapter(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize database: %v", err)
		}
		defer dbAdapter.Close()
		repo = dbAdapter
	default:
		repo = csv.NewLoader(cfg.Storage.CSVPath)
	}

	var tracks ports.TrackProvider
	if cfg.Spotify.Enabled() {
		httpClient := spotify.NewAuthClient(context.Background(), cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.TokenURL)
		tracks = spotify.NewClient(httpClient, cfg.Spotify.BaseURL)
	} else {
		log.Println("WARN api: SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET not set; track lookups disabled")
	}

	// 3. Core
	svc := services.NewDashboard(repo, tracks, settings)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	err = svc.Load(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	snapshot, _ := svc.Snapshot()
	log.Printf("loaded dataset snapshot %s from %s storage", snapshot, cfg.Storage.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Track prefetch
	if tracks != nil {
		jobs := svc.TrackJobs()
		pool := worker.NewPool(tracks, svc, len(jobs), 10*time.Second)
		pool.Start(ctx, 4)
		for _, job := range jobs {
			pool.Submit(job)
		}
		defer pool.Stop()
		log.Printf("prefetching %d tracks", len(jobs))
	}

	// 5. Driving adapter
	handler := rest.NewHandler(svc)

	log.Printf("Fight songs API is running on %s", cfg.Server.Addr)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
