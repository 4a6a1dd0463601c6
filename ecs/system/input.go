package system

import (
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// InputSource reports the desired movement direction for this frame. Each
// axis is in [-1, 1].
type InputSource interface {
	Move() (x, y float64)
}

type InputSourceFunc func() (x, y float64)

func (f InputSourceFunc) Move() (float64, float64) {
	if f == nil {
		return 0, 0
	}
	return f()
}

// InputSystem copies the source's intent into every Input component.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (s *InputSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	var x, y float64
	if s.source != nil {
		x, y = s.source.Move()
	}
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.MoveX = x
		in.MoveY = y
	})
}
