package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hmelo/kitchenrush/internal/application/game"
	"github.com/hmelo/kitchenrush/internal/application/scene/playing"
	"github.com/hmelo/kitchenrush/internal/infrastructure/assets"
	"github.com/hmelo/kitchenrush/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Tuning file to load instead of the built-in table")
	levelFlag := flag.Int("level", 1, "Level to start at")
	watchFlag := flag.Bool("watch", false, "Reload the tuning file on change (applies at the next level)")
	assetsFlag := flag.String("assets", "assets", "Asset directory (sprites, audio, cutscenes)")
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		dir, base := filepath.Split(*configFlag)
		if dir == "" {
			dir = "."
		}
		loaded, err := config.NewLoader(dir).Load(base)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	store := config.NewStore(cfg)

	if *watchFlag {
		if *configFlag == "" {
			log.Printf("-watch ignored: no -config file to watch")
		} else {
			watcher, err := config.Watch(*configFlag, store)
			if err != nil {
				log.Fatalf("Failed to watch config: %v", err)
			}
			defer watcher.Close()
		}
	}

	lib := assets.NewLibrary(*assetsFlag)

	// Create game
	g := game.New(playing.New(store, lib, *levelFlag), cfg.Display)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
