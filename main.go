package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/prefabs"
	"github.com/milk9111/pizzasurvivor/records"
	"golang.design/x/clipboard"
)

func main() {
	debug := flag.Bool("debug", false, "draw collider outlines")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "reload prefabs/ when tuning or scripts change on disk")
	menu := flag.Bool("menu", true, "show the main menu; -menu=false starts a round immediately")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, prefabs.ScriptDir)
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	game, err := NewGame(GameConfig{
		Tuning:    tuning,
		Store:     records.Open(),
		Watcher:   watcher,
		Seed:      *seed,
		Debug:     *debug,
		SkipMenu:  !*menu,
		Clipboard: clipboardOK,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.WindowWidth, common.WindowHeight)
	ebiten.SetWindowTitle("Pizza Survivor")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
