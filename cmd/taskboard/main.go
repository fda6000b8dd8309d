package main

import (
	"context"
	"log"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/app"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
