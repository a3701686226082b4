package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Manthan2549/panchveda-wellness-hub/internal/app"
	"github.com/Manthan2549/panchveda-wellness-hub/internal/config"
)

func main() {
	// Optional; production deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
