package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/watchfaces/host"
	"github.com/milk9111/watchfaces/platform"
)

func main() {
	faceName := flag.String("face", "", "face to load (overrides config)")
	zoom := flag.Int("zoom", 0, "window scale factor (overrides config)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := platform.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *faceName != "" {
		cfg.Face = *faceName
	}
	if *zoom > 0 {
		cfg.Zoom = *zoom
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	store, err := host.OpenStore(filepath.Join(dataDir, "watch.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	var haptics host.Haptics = host.NopHaptics{}
	if cfg.Audio {
		buzzer, err := host.NewBuzzer()
		if err != nil {
			log.Printf("audio unavailable, pulses disabled: %v", err)
		} else {
			haptics = buzzer
		}
	}

	watcher, err := platform.NewWatcher(".")
	if err != nil {
		log.Printf("config watch disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	game, err := NewGame(cfg, store, haptics, watcher)
	if err != nil {
		log.Fatal(err)
	}

	profile := platform.NewProfile(cfg)
	ebiten.SetWindowSize(profile.Width*game.zoom, profile.Height*game.zoom)
	ebiten.SetWindowTitle("watchfaces")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.Shutdown()
}
