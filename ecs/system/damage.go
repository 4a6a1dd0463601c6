package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

// HitReporter applies weapon damage to enemies and spawns the floating
// number for each hit. Shared by every weapon system.
type HitReporter struct {
	numbers prefabs.DamageNumberSpec
	flash   prefabs.EnemySpec
}

func NewHitReporter(numbers prefabs.DamageNumberSpec, enemy prefabs.EnemySpec) *HitReporter {
	return &HitReporter{numbers: numbers, flash: enemy}
}

// Damage subtracts amount from target's health. Death is resolved later by
// EnemyDeathSystem, so health may go negative here.
func (h *HitReporter) Damage(w *ecs.World, target ecs.Entity, amount float64, flash bool) {
	enemy, ok := ecs.Get(w, target, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	enemy.Health -= amount
	w.Events().Push(ecs.Event{Type: ecs.EventDamageDealt, Entity: target, Amount: amount})

	if h == nil {
		return
	}
	t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if ok && h.numbers.Lifetime > 0 {
		_, _ = entity.NewDamageNumber(w, h.numbers, cp.Vector{X: t.X, Y: t.Y + 0.5}, amount)
	}
	if flash && h.flash.FlashSeconds > 0 {
		startHitFlash(w, target, h.flash)
	}
}

func startHitFlash(w *ecs.World, target ecs.Entity, spec prefabs.EnemySpec) {
	sprite, ok := ecs.Get(w, target, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	if hf, ok := ecs.Get(w, target, component.HitFlashComponent.Kind()); ok {
		hf.Seconds = spec.FlashSeconds
		return
	}
	original := sprite.Color
	sprite.Color = spec.FlashColor.Or(sprite.Color)
	_ = ecs.Add(w, target, component.HitFlashComponent.Kind(), &component.HitFlash{
		Seconds:  spec.FlashSeconds,
		Original: original,
	})
}

// HitFlashSystem restores tinted sprites once the flash expires.
type HitFlashSystem struct{}

func NewHitFlashSystem() *HitFlashSystem {
	return &HitFlashSystem{}
}

func (s *HitFlashSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.HitFlashComponent.Kind(), func(e ecs.Entity, hf *component.HitFlash) {
		hf.Seconds -= dt
		if hf.Seconds > 0 {
			return
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Color = hf.Original
		}
		ecs.Remove(w, e, component.HitFlashComponent.Kind())
	})
}

// DamageNumberSystem drifts floating numbers. TTLSystem removes them.
type DamageNumberSystem struct{}

func NewDamageNumberSystem() *DamageNumberSystem {
	return &DamageNumberSystem{}
}

func (s *DamageNumberSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.DamageNumberComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, n *component.DamageNumber, t *component.Transform) {
		t.X += n.VelX * dt
		t.Y += n.VelY * dt
	})
}
