package main

import (
	"log"

	"github.com/career-compass/career-compass-backend/config"
	"github.com/career-compass/career-compass-backend/internal/bootstrap"
	"github.com/career-compass/career-compass-backend/internal/plans/generator"
)

const serviceName = "career-compass-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	gen, err := generator.New(generator.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		log.Fatalf("generator: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		StaticDir:   cfg.App.StaticDir,
		Generator:   gen,
	})

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
