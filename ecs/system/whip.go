package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

// WhipFacingSystem flips a lone whip to the side the player faces. With two
// whips both sides are covered and nothing moves.
type WhipFacingSystem struct {
	offset float64
	warn   missingWarner
}

func NewWhipFacingSystem(spec prefabs.WhipSpec) *WhipFacingSystem {
	return &WhipFacingSystem{offset: spec.Offset}
}

func (s *WhipFacingSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	whips := w.Query(component.WhipComponent.Kind(), component.AttachmentComponent.Kind())
	if len(whips) != 1 {
		return
	}
	_, p, _, ok := playerEntity(w, &s.warn, "whip facing")
	if !ok {
		return
	}
	a, _ := ecs.Get(w, whips[0], component.AttachmentComponent.Kind())
	a.Offset = cp.Vector{X: s.offset * p.Facing.Sign()}
	if sprite, ok := ecs.Get(w, whips[0], component.SpriteComponent.Kind()); ok {
		sprite.FlipX = p.Facing == component.FacingLeft
	}
}

// WhipAttackSystem runs each whip's cycle. The whip is visible for the
// first VisibleFraction of the cycle and, when the cycle completes, hits
// every enemy it overlaps once.
type WhipAttackSystem struct {
	visible float64
	hits    *HitReporter
}

func NewWhipAttackSystem(spec prefabs.WhipSpec, hits *HitReporter) *WhipAttackSystem {
	return &WhipAttackSystem{visible: spec.VisibleFraction, hits: hits}
}

func (s *WhipAttackSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.WhipComponent.Kind(), func(e ecs.Entity, whip *component.Whip) {
		whip.Timer.Tick(dt)
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = whip.Timer.Percent() >= s.visible
		}
		if !whip.Timer.JustFinished() {
			return
		}
		for _, target := range OverlappingWith(w, e, component.EnemyComponent.Kind()) {
			s.hits.Damage(w, target, whip.Damage, true)
		}
	})
}
