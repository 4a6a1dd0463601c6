package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs/render"
	"github.com/milk9111/pizzasurvivor/prefabs"
	"github.com/milk9111/pizzasurvivor/records"
	"github.com/milk9111/pizzasurvivor/session"
	"golang.org/x/image/colornames"
)

// Game adapts a session.Session to ebiten: it feeds input, steps the
// session at a fixed rate and swaps the ebitenui screen with the phase.
type Game struct {
	session  *session.Session
	store    *records.Store
	input    *Input
	renderer *render.RenderSystem
	watcher  *prefabs.Watcher
	fonts    fonts

	ui        *ebitenui.UI
	uiKey     screenKey
	uiBuilt   bool
	paused    bool
	about     bool
	clipboard bool
}

type GameConfig struct {
	Tuning    *prefabs.Tuning
	Store     *records.Store
	Watcher   *prefabs.Watcher
	Seed      uint64
	Debug     bool
	SkipMenu  bool
	Clipboard bool
}

func NewGame(cfg GameConfig) (*Game, error) {
	input := NewInput()
	s, err := session.New(session.Config{
		Tuning:   cfg.Tuning,
		Seed:     cfg.Seed,
		Input:    input,
		Recorder: cfg.Store,
	})
	if err != nil {
		return nil, err
	}
	g := &Game{
		session:   s,
		store:     cfg.Store,
		input:     input,
		renderer:  render.NewRenderSystem(cfg.Debug),
		watcher:   cfg.Watcher,
		fonts:     loadFonts(),
		clipboard: cfg.Clipboard,
	}
	if cfg.SkipMenu {
		if err := s.Start(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.reload()

	phase := g.session.Phase()
	switch phase {
	case session.PhaseGameplay:
		if g.input.PausePressed() {
			g.paused = !g.paused
		}
	case session.PhaseLevelUp:
		if i := g.input.ChoicePressed(); i >= 0 {
			if offer, err := g.session.Offer(); err == nil && i < len(offer) {
				g.choose(offer[i])
			}
		}
	case session.PhaseMainMenu, session.PhaseGameOver:
		if !g.about && g.input.ConfirmPressed() {
			g.start()
		}
	}
	if g.session.Phase() != session.PhaseGameplay {
		g.paused = false
	}

	g.syncUI()
	if g.ui != nil {
		g.ui.Update()
	}

	if !g.paused {
		g.session.Update(common.FixedDelta)
	}
	return nil
}

// syncUI rebuilds the menu when the phase or a menu flag changed.
func (g *Game) syncUI() {
	key := screenKey{phase: g.session.Phase(), paused: g.paused, about: g.about}
	if g.uiBuilt && key == g.uiKey {
		return
	}
	g.uiKey = key
	g.uiBuilt = true
	g.ui = g.buildUI(key)
}

// reload applies pending file changes from the watcher. Tuning edits take
// effect on the next round, script edits on the next enemy spawned.
func (g *Game) reload() {
	for _, name := range g.watcher.Drain() {
		switch {
		case prefabs.IsTuningFile(name):
			t, err := prefabs.LoadTuning()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			if err := g.session.SetTuning(t); err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			log.Printf("prefabs: reloaded %s, applies to the next round", name)
		default:
			g.session.InvalidateScripts()
			log.Printf("prefabs: reloaded %s", name)
		}
	}
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	switch g.session.Phase() {
	case session.PhaseGameplay, session.PhaseLevelUp, session.PhaseGameOver:
		g.renderer.Draw(g.session.World(), screen)
		drawHUD(screen, g.session, g.fonts.small)
	}

	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.RenderWidth, common.RenderHeight
}
