package main

import (
	"context"
	"log"

	"github.com/timursarsembai/crochet-shop/internal/app"
	"github.com/timursarsembai/crochet-shop/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("assemble application: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatalf("run application: %v", err)
	}
}
