package main

import (
	"flag"
	"log"

	"TacBoard/internal/config"
	"TacBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default: user config dir)")
	mediaDir := flag.String("media", "", "directory holding the map images")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mediaDir != "" {
		cfg.Media.Dir = *mediaDir
	}

	log.Printf("Starting board %dx%d, maps from %s", cfg.Window.Width, cfg.Window.Height, cfg.Media.Dir)
	ui.RunApp(cfg)
}
