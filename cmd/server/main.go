package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/polarity/internal/config"
	"github.com/agenthands/polarity/internal/core"
	"github.com/agenthands/polarity/internal/driver"
	"github.com/agenthands/polarity/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg := config.Default()
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	if loaded, err := config.Load(cfgPath); err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
	} else {
		cfg = loaded
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	p := core.NewPropagator(nil)
	p.BatchSize = cfg.Memgraph.BatchSize

	ctx := context.Background()
	if os.Getenv("MEMGRAPH_DISABLED") == "" {
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			log.Printf("Warning: %v. Export is disabled", err)
		} else {
			defer d.Close(ctx)
			if err := d.BuildIndices(ctx); err != nil {
				log.Fatalf("Failed to build indices: %v", err)
			}
			p.Driver = d
		}
	}

	srv := server.NewServer(cfg, p)
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
