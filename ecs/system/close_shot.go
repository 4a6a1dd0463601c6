package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

// CloseShotSystem fires a bullet from each launcher at the nearest enemy
// whenever the launcher's timer completes. No enemies means no bullet.
type CloseShotSystem struct {
	spec prefabs.CloseShotSpec
}

func NewCloseShotSystem(spec prefabs.CloseShotSpec) *CloseShotSystem {
	return &CloseShotSystem{spec: spec}
}

func (s *CloseShotSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.CloseShotComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, shot *component.CloseShot, t *component.Transform) {
		shot.Timer.Tick(dt)
		if !shot.Timer.JustFinished() {
			return
		}
		origin := cp.Vector{X: t.X, Y: t.Y}
		target, ok := NearestEnemy(w, origin)
		if !ok {
			return
		}
		dir, _ := common.Dir(origin.X, origin.Y, target.X, target.Y)
		if dir.LengthSq() == 0 {
			dir = cp.Vector{X: 1}
		}
		if _, err := entity.NewCloseShotBullet(w, s.spec, origin, dir, s.spec.BulletDamage*shot.DamageScale); err != nil {
			log.Printf("close shot: spawn bullet: %v", err)
		}
	})
}

// NearestEnemy returns the position of the living enemy closest to from by
// straight-line distance. Ties keep the first one found.
func NearestEnemy(w *ecs.World, from cp.Vector) (cp.Vector, bool) {
	best := math.Inf(1)
	var pos cp.Vector
	found := false
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if enemy.Health <= 0 {
			return
		}
		p := cp.Vector{X: t.X, Y: t.Y}
		if d := p.DistanceSq(from); d < best {
			best = d
			pos = p
			found = true
		}
	})
	return pos, found
}

// CloseShotBulletSystem flies bullets straight, expires them at the end of
// their lifetime and spends each one on the first living enemy it touches.
type CloseShotBulletSystem struct {
	hits *HitReporter
}

func NewCloseShotBulletSystem(hits *HitReporter) *CloseShotBulletSystem {
	return &CloseShotBulletSystem{hits: hits}
}

func (s *CloseShotBulletSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.CloseShotBulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.CloseShotBullet, t *component.Transform) {
		b.Lifetime.Tick(dt)
		if b.Lifetime.Finished() {
			ecs.DestroyEntity(w, e)
			return
		}
		t.X += b.DirX * b.Speed * dt
		t.Y += b.DirY * b.Speed * dt

		for _, target := range OverlappingWith(w, e, component.EnemyComponent.Kind()) {
			// corpses wait for the death system; bullets pass through them
			if enemy, ok := ecs.Get(w, target, component.EnemyComponent.Kind()); !ok || enemy.Health <= 0 {
				continue
			}
			s.hits.Damage(w, target, b.Damage, false)
			ecs.DestroyEntity(w, e)
			return
		}
	})
}
