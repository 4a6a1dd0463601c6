package render

import (
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// View maps world units (y up, camera centred) to screen pixels (y down).
type View struct {
	X, Y    float64
	Scale   float64
	ScreenW float64
	ScreenH float64
}

// ViewOf builds the view from the world's camera entity. Without a camera
// the origin is centred at the default scale.
func ViewOf(w *ecs.World, screenW, screenH float64) View {
	v := View{Scale: screenH / common.ViewHeight, ScreenW: screenW, ScreenH: screenH}
	if w == nil {
		return v
	}
	ce, ok := ecs.First(w, component.CameraTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return v
	}
	t, _ := ecs.Get(w, ce, component.TransformComponent.Kind())
	v.X, v.Y = t.X, t.Y
	if cam, ok := ecs.Get(w, ce, component.CameraComponent.Kind()); ok && cam.ViewHeight > 0 {
		zoom := cam.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		v.Scale = screenH / cam.ViewHeight * zoom
	}
	return v
}

func (v View) ToScreen(x, y float64) (float32, float32) {
	sx := (x-v.X)*v.Scale + v.ScreenW/2
	sy := v.ScreenH/2 - (y-v.Y)*v.Scale
	return float32(sx), float32(sy)
}

// Len converts a world length to pixels.
func (v View) Len(l float64) float32 {
	return float32(l * v.Scale)
}

// Visible reports whether a box of half-extent r around (x, y) touches the
// screen.
func (v View) Visible(x, y, r float64) bool {
	halfW := v.ScreenW / 2 / v.Scale
	halfH := v.ScreenH / 2 / v.Scale
	return x+r >= v.X-halfW && x-r <= v.X+halfW && y+r >= v.Y-halfH && y-r <= v.Y+halfH
}
