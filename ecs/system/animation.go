package system

import (
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// TwoFrameAnimationSystem swaps the sprite colour each time the frame
// timer completes.
type TwoFrameAnimationSystem struct{}

func NewTwoFrameAnimationSystem() *TwoFrameAnimationSystem {
	return &TwoFrameAnimationSystem{}
}

func (s *TwoFrameAnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.TwoFrameAnimationComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, anim *component.TwoFrameAnimation, sprite *component.Sprite) {
		anim.Timer.Tick(dt)
		if anim.Timer.TimesFinished()%2 == 1 {
			anim.Frame = 1 - anim.Frame
		}
		sprite.Color = anim.Frames[anim.Frame]
	})
}

// FallSystem drops level-up particles and wraps them back to the top once
// they pass the bottom of the view. Bounds are relative to the camera.
type FallSystem struct{}

func NewFallSystem() *FallSystem {
	return &FallSystem{}
}

func (s *FallSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	var camY float64
	if ce, ok := ecs.First(w, component.CameraTagComponent.Kind(), component.TransformComponent.Kind()); ok {
		ct, _ := ecs.Get(w, ce, component.TransformComponent.Kind())
		camY = ct.Y
	}
	ecs.ForEach2(w, component.FallComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, f *component.Fall, t *component.Transform) {
		t.Y -= f.Speed * dt
		if t.Y-camY < f.Bottom {
			t.Y = camY + f.Top
		}
	})
}
