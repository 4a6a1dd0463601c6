package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// PlayerMovementSystem moves the player along its input at Player.Speed and
// keeps Facing in step with the last horizontal input.
type PlayerMovementSystem struct{}

func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (s *PlayerMovementSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input, t *component.Transform) {
		dir := cp.Vector{X: in.MoveX, Y: in.MoveY}
		if dir.LengthSq() > 1 {
			dir = dir.Normalize()
		}
		t.X += dir.X * p.Speed * dt
		t.Y += dir.Y * p.Speed * dt

		switch {
		case in.MoveX < 0:
			p.Facing = component.FacingLeft
		case in.MoveX > 0:
			p.Facing = component.FacingRight
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FlipX = p.Facing == component.FacingLeft
		}
	})
}

// AttachmentSystem keeps attached entities at their offset from the owner
// and removes them when the owner is gone.
type AttachmentSystem struct{}

func NewAttachmentSystem() *AttachmentSystem {
	return &AttachmentSystem{}
}

func (s *AttachmentSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.AttachmentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Attachment, t *component.Transform) {
		owner := ecs.Entity(a.Owner)
		ot, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
		if !ok {
			ecs.DestroyEntity(w, e)
			return
		}
		t.X = ot.X + a.Offset.X
		t.Y = ot.Y + a.Offset.Y
	})
}
