package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs/render"
	"github.com/milk9111/pizzasurvivor/session"
	"golang.org/x/image/colornames"
)

const (
	expBarHeight    = 24
	healthBarWidth  = 80
	healthBarHeight = 10
)

var barBack = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xc0}

// drawHUD draws the experience bar across the top, the health bar under the
// player and the round status line.
func drawHUD(screen *ebiten.Image, s *session.Session, face ebtext.Face) {
	p, pos, ok := s.Player()
	if !ok {
		return
	}
	b := screen.Bounds()
	sw := float32(b.Dx())

	vector.DrawFilledRect(screen, 0, 0, sw, expBarHeight, barBack, false)
	if p.NextLevelExp > 0 {
		frac := float32(common.Clamp(float64(p.Exp)/float64(p.NextLevelExp), 0, 1))
		vector.DrawFilledRect(screen, 0, 0, sw*frac, expBarHeight, colornames.Deepskyblue, false)
	}

	view := render.ViewOf(s.World(), float64(b.Dx()), float64(b.Dy()))
	x, y := view.ToScreen(pos.X, pos.Y)
	y += view.Len(s.Tuning().Player.Size/2) + 8
	left := x - healthBarWidth/2
	vector.DrawFilledRect(screen, left, y, healthBarWidth, healthBarHeight, barBack, false)
	if p.MaxHealth > 0 {
		frac := float32(common.Clamp(p.Health/p.MaxHealth, 0, 1))
		vector.DrawFilledRect(screen, left, y, healthBarWidth*frac, healthBarHeight, colornames.Limegreen, false)
	}

	stats := s.Stats()
	wave, mult := s.Wave()
	secs := int(stats.Elapsed)
	status := fmt.Sprintf("Level %d   Wave %d (x%.2f)   %d:%02d   Kills %d", p.Level, wave+1, mult, secs/60, secs%60, stats.Kills)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(16, expBarHeight+8)
	op.ColorScale.ScaleWithColor(white)
	ebtext.Draw(screen, status, face, op)
}
