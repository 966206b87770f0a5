package main

import (
	"flag"
	"fmt"
	"os"

	"mintodo/internal/config"
	"mintodo/internal/logging"
	"mintodo/internal/storage"
	"mintodo/internal/tasks"
	"mintodo/internal/ui"
)

func main() {
	configPath := flag.String("config", config.ResolveConfigPath(), "path to config.toml")
	flag.Parse()

	cfg, err := config.LoadOrCreate(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "err", err)
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	store := tasks.Open(db, cfg.StorageKey, tasks.WithLogger(logger.Logger))
	logger.Info("starting", "config", *configPath, "db", cfg.DBPath, "tasks", store.Len())

	if err := ui.Run(store, cfg, logger.Logger); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
