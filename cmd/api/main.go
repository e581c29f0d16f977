package main

import (
	"github.com/mypetvenues/services/api/internal/config"
	"github.com/mypetvenues/services/api/internal/infrastructure/seed"
	"github.com/mypetvenues/services/api/internal/server"
)

func main() {
	cfg := config.Load()

	data := seed.Default()
	if cfg.SeedFile != "" {
		loaded, err := seed.Load(cfg.SeedFile)
		if err != nil {
			cfg.ServerLog.Fatalf("failed to load seed file %s: %v", cfg.SeedFile, err)
		}
		data = loaded
		cfg.ServerLog.Printf("seeded from %s: %d venues, %d reviews, %d bookings",
			cfg.SeedFile, len(data.Venues), len(data.Reviews), len(data.Bookings))
	}

	srv := server.New(cfg, data)
	if err := srv.Run(); err != nil {
		cfg.ServerLog.Fatalf("server stopped: %v", err)
	}
}
