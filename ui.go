package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs/system"
	"github.com/milk9111/pizzasurvivor/session"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	white      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gold       = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	panelColor = color.NRGBA{A: 200}
	btnColor   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	btnHover   = color.NRGBA{R: 0x55, G: 0x44, B: 0x22, A: 0xff}
)

// fonts holds the faces shared by the menus and the HUD. The scalable Go
// font is preferred; basicfont is the fallback if it fails to parse.
type fonts struct {
	title ebtext.Face
	body  ebtext.Face
	small ebtext.Face
}

func loadFonts() fonts {
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("ui: load font: %v", err)
		face := ebtext.NewGoXFace(basicfont.Face7x13)
		return fonts{title: face, body: face, small: face}
	}
	return fonts{
		title: &ebtext.GoTextFace{Source: src, Size: 64},
		body:  &ebtext.GoTextFace{Source: src, Size: 32},
		small: &ebtext.GoTextFace{Source: src, Size: 22},
	}
}

// screenKey identifies which menu is on screen. The UI is rebuilt whenever
// it changes.
type screenKey struct {
	phase  session.Phase
	paused bool
	about  bool
}

func (g *Game) buildUI(key screenKey) *ebitenui.UI {
	switch key.phase {
	case session.PhaseMainMenu:
		if key.about {
			return g.newAboutUI()
		}
		return g.newMainMenuUI()
	case session.PhaseGameplay:
		if key.paused {
			return g.newPauseUI()
		}
	case session.PhaseLevelUp:
		return g.newLevelUpUI()
	case session.PhaseGameOver:
		return g.newGameOverUI()
	}
	return nil
}

func (g *Game) newPanel(widthFrac, heightFrac int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 40, Bottom: 40, Left: 60, Right: 60}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.RenderWidth/widthFrac, common.RenderHeight/heightFrac),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func (g *Game) newLabel(label string, face ebtext.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (g *Game) newButton(label string, onClick func()) *widget.Button {
	face := g.fonts.body
	idle := imageui.NewNineSliceColor(btnColor)
	hover := imageui.NewNineSliceColor(btnHover)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: hover}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 12, Bottom: 12, Left: 40, Right: 40}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func wrap(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (g *Game) newMainMenuUI() *ebitenui.UI {
	panel := g.newPanel(3, 2)
	panel.AddChild(g.newLabel("Pizza Survivor", g.fonts.title, gold))

	best := "No runs yet"
	if run, ok := g.store.Best(); ok {
		best = "Best: " + run.String()
	}
	panel.AddChild(g.newLabel(best, g.fonts.small, white))

	panel.AddChild(g.newButton("Start", g.start))
	panel.AddChild(g.newButton("About", func() { g.about = true }))
	return wrap(panel)
}

func (g *Game) newAboutUI() *ebitenui.UI {
	panel := g.newPanel(2, 2)
	panel.AddChild(g.newLabel("About", g.fonts.title, gold))
	for _, line := range []string{
		"Survive the endless waves for as long as you can.",
		"Move with WASD, the arrow keys or the left stick.",
		"Weapons fire on their own. Collect orbs to level up.",
		"Each level lets you pick one of two upgrades (1 / 2).",
		"Esc or P pauses.",
	} {
		panel.AddChild(g.newLabel(line, g.fonts.small, white))
	}
	panel.AddChild(g.newButton("Back", func() { g.about = false }))
	return wrap(panel)
}

func (g *Game) newPauseUI() *ebitenui.UI {
	panel := g.newPanel(3, 3)
	panel.AddChild(g.newLabel("Paused", g.fonts.title, white))
	panel.AddChild(g.newButton("Resume", func() { g.paused = false }))
	panel.AddChild(g.newButton("Quit to menu", g.quit))
	return wrap(panel)
}

func (g *Game) newLevelUpUI() *ebitenui.UI {
	offer, err := g.session.Offer()
	if err != nil {
		log.Printf("ui: %v", err)
		return nil
	}
	p, _, _ := g.session.Player()

	panel := g.newPanel(3, 3)
	panel.AddChild(g.newLabel(fmt.Sprintf("Level %d!", p.Level), g.fonts.title, gold))
	for i, u := range offer {
		panel.AddChild(g.newButton(fmt.Sprintf("%d. %s", i+1, u), func() { g.choose(u) }))
	}
	return wrap(panel)
}

func (g *Game) newGameOverUI() *ebitenui.UI {
	run, improved := g.session.LastRun()

	panel := g.newPanel(2, 2)
	panel.AddChild(g.newLabel("Game Over", g.fonts.title, white))
	panel.AddChild(g.newLabel(run.String(), g.fonts.small, white))
	if improved {
		panel.AddChild(g.newLabel("New best!", g.fonts.body, gold))
	}
	panel.AddChild(g.newButton("Restart", g.start))
	panel.AddChild(g.newButton("Menu", g.quit))
	if g.clipboard {
		panel.AddChild(g.newButton("Copy summary", func() {
			clipboard.Write(clipboard.FmtText, []byte(g.session.Summary()))
		}))
	}
	return wrap(panel)
}

func (g *Game) start() {
	if err := g.session.Start(); err != nil {
		log.Printf("game: start: %v", err)
	}
}

func (g *Game) quit() {
	g.paused = false
	if err := g.session.Quit(); err != nil {
		log.Printf("game: quit: %v", err)
	}
}

func (g *Game) choose(u system.Upgrade) {
	if err := g.session.Select(u); err != nil {
		log.Printf("game: select %s: %v", u, err)
	}
}
