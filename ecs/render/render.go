package render

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem draws every sprite in layer order, floating damage numbers
// and, in debug mode, collider outlines.
type RenderSystem struct {
	Debug bool

	face text.Face
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug, face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	view := ViewOf(w, float64(b.Dx()), float64(b.Dy()))

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := layerOf(w, entities[i])
		lj := layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Hidden || s.Color == nil {
			continue
		}
		if n, ok := ecs.Get(w, e, component.DamageNumberComponent.Kind()); ok {
			r.drawDamageNumber(w, screen, view, e, t, s, n)
			continue
		}
		if !view.Visible(t.X, t.Y, math.Max(s.Width, s.Height)) {
			continue
		}
		drawSprite(screen, view, t, s, layerOf(w, e))
	}

	if r.Debug {
		drawColliders(w, screen, view)
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func drawSprite(screen *ebiten.Image, view View, t *component.Transform, s *component.Sprite, layer int) {
	x, y := view.ToScreen(t.X, t.Y)
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	wpx := view.Len(s.Width * sx)
	hpx := view.Len(s.Height * sy)

	switch s.Shape {
	case component.SpriteCircle:
		radius := wpx / 2
		vector.DrawFilledCircle(screen, x, y, radius, s.Color, true)
		// characters get an eye on the side they face
		if layer == component.LayerPlayer || layer == component.LayerEnemies {
			dir := float32(1)
			if s.FlipX {
				dir = -1
			}
			vector.DrawFilledCircle(screen, x+dir*radius*0.45, y-radius*0.2, radius*0.18, colornames.Black, true)
		}
	default:
		vector.DrawFilledRect(screen, x-wpx/2, y-hpx/2, wpx, hpx, s.Color, false)
	}
}

func (r *RenderSystem) drawDamageNumber(w *ecs.World, screen *ebiten.Image, view View, e ecs.Entity, t *component.Transform, s *component.Sprite, n *component.DamageNumber) {
	alpha := 1.0
	if ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind()); ok && n.Life > 0 {
		alpha = common.Clamp(ttl.Seconds/n.Life, 0, 1)
	}
	label := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if n.Value != math.Trunc(n.Value) {
		label = strconv.FormatFloat(n.Value, 'f', 1, 64)
	}

	x, y := view.ToScreen(t.X, t.Y)
	width, height := text.Measure(label, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(s.Color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, label, r.face, op)
}

func drawColliders(w *ecs.World, screen *ebiten.Image, view View) {
	outline := color.NRGBA{G: 255, A: 200}
	sensor := color.NRGBA{R: 255, G: 255, A: 160}
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		c := outline
		if pb.Sensor || !pb.Dynamic {
			c = sensor
		}
		x, y := view.ToScreen(t.X, t.Y)
		switch pb.Kind {
		case component.ColliderBox:
			wpx, hpx := view.Len(pb.Width), view.Len(pb.Height)
			vector.StrokeRect(screen, x-wpx/2, y-hpx/2, wpx, hpx, 1, c, false)
		default:
			vector.StrokeCircle(screen, x, y, view.Len(pb.Radius), 1, c, true)
		}
	})
}
