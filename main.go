package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowpine/grapple/settings"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	worldPath := flag.String("world", "", "world JSON path (defaults to the embedded world)")
	watch := flag.Bool("watch", false, "reload the world when its files change (requires -world)")
	settingsPath := flag.String("settings", "settings.yaml", "settings file path")
	flag.Parse()

	cfg := settings.Load(*settingsPath)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.ViewWidth*2, cfg.ViewHeight*2)
	ebiten.SetWindowTitle("grapple")
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(60)

	game, err := NewGame(*worldPath, *watch, *debug, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
