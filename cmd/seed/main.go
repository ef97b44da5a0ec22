package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hiyoko-dev/crm-web/internal/config"
	"github.com/hiyoko-dev/crm-web/internal/database"
	"github.com/hiyoko-dev/crm-web/internal/seed"
)

func main() {
	force := flag.Bool("force", false, "seed even when contacts already exist")
	flag.Parse()

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed.Run(database.GetDB(), *force); err != nil {
		if errors.Is(err, seed.ErrAlreadySeeded) {
			log.Println("Sample data already present, nothing to do (use -force to override)")
			return
		}
		log.Fatalf("Failed to seed sample data: %v", err)
	}
}
