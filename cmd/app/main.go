package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/bootstrap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("load config: %v", err)
		}
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "airreserve: ", log.LstdFlags)
	if err := bootstrap.Run(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil {
		log.Fatalf("console error: %v", err)
	}
}
