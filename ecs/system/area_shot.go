package system

import (
	"log"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

// AreaShotSystem drops a damage zone at a random spot around each launcher
// whenever its timer completes.
type AreaShotSystem struct {
	spec prefabs.AreaShotSpec
	rng  *rand.Rand
}

func NewAreaShotSystem(spec prefabs.AreaShotSpec, rng *rand.Rand) *AreaShotSystem {
	return &AreaShotSystem{spec: spec, rng: rng}
}

func (s *AreaShotSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || s.rng == nil {
		return
	}
	ecs.ForEach2(w, component.AreaShotComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, shot *component.AreaShot, t *component.Transform) {
		shot.Timer.Tick(dt)
		if !shot.Timer.JustFinished() {
			return
		}
		pos := common.RingPoint(s.rng, cp.Vector{X: t.X, Y: t.Y}, s.spec.Ring, s.spec.Offset)
		if _, err := entity.NewAreaShotBullet(w, s.spec, pos, s.spec.DamagePerPulse*shot.DamageScale); err != nil {
			log.Printf("area shot: spawn bullet: %v", err)
		}
	})
}

// AreaShotBulletSystem pulses damage onto every enemy inside each zone and
// removes zones whose lifetime is over.
type AreaShotBulletSystem struct {
	hits *HitReporter
}

func NewAreaShotBulletSystem(hits *HitReporter) *AreaShotBulletSystem {
	return &AreaShotBulletSystem{hits: hits}
}

func (s *AreaShotBulletSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.AreaShotBulletComponent.Kind(), func(e ecs.Entity, b *component.AreaShotBullet) {
		b.Lifetime.Tick(dt)
		if b.Lifetime.Finished() {
			ecs.DestroyEntity(w, e)
			return
		}
		b.Pulse.Tick(dt)
		if !b.Pulse.JustFinished() {
			return
		}
		for _, target := range OverlappingWith(w, e, component.EnemyComponent.Kind()) {
			s.hits.Damage(w, target, b.DamagePerPulse, false)
		}
	})
}
