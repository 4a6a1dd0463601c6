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

// EnemyMovementSystem steers every enemy straight at the player.
type EnemyMovementSystem struct {
	warn missingWarner
}

func NewEnemyMovementSystem() *EnemyMovementSystem {
	return &EnemyMovementSystem{}
}

func (s *EnemyMovementSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	_, _, pt, ok := playerEntity(w, &s.warn, "enemy movement")
	if !ok {
		return
	}
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		dir, _ := common.Dir(t.X, t.Y, pt.X, pt.Y)
		scale := enemy.SpeedScale
		if scale <= 0 {
			scale = 1
		}
		v := dir.Mult(enemy.Speed * scale)
		setVelocity(w, e, v.X, v.Y, dt)
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && dir.X != 0 {
			sprite.FlipX = dir.X < 0
		}
	})
}

// EnemyContactDamageSystem drains DamagePerSecond*dt from the player for
// every enemy touching it. Health never drops below zero.
type EnemyContactDamageSystem struct {
	warn missingWarner
}

func NewEnemyContactDamageSystem() *EnemyContactDamageSystem {
	return &EnemyContactDamageSystem{}
}

func (s *EnemyContactDamageSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	pe, p, _, ok := playerEntity(w, &s.warn, "contact damage")
	if !ok {
		return
	}
	for _, e := range OverlappingWith(w, pe, component.EnemyComponent.Kind()) {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
		ApplyContactDamage(p, enemy.DamagePerSecond, dt)
	}
}

// ApplyContactDamage subtracts rate*dt from p's health, clamping at zero.
func ApplyContactDamage(p *component.Player, rate, dt float64) {
	if p == nil || rate <= 0 || dt <= 0 {
		return
	}
	p.Health -= rate * dt
	if p.Health <= common.HealthEpsilon {
		p.Health = 0
	}
}

// EnemyDespawnSystem removes enemies that fell too far behind the player.
// Despawned enemies drop nothing.
type EnemyDespawnSystem struct {
	radius float64
	warn   missingWarner
}

func NewEnemyDespawnSystem(spec prefabs.EnemySpec) *EnemyDespawnSystem {
	return &EnemyDespawnSystem{radius: spec.DespawnRadius}
}

func (s *EnemyDespawnSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil || s.radius <= 0 {
		return
	}
	_, _, pt, ok := playerEntity(w, &s.warn, "enemy despawn")
	if !ok {
		return
	}
	player := cp.Vector{X: pt.X, Y: pt.Y}
	r2 := s.radius * s.radius
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, t *component.Transform) {
		if player.DistanceSq(cp.Vector{X: t.X, Y: t.Y}) > r2 {
			ecs.DestroyEntity(w, e)
		}
	})
}

// EnemyDeathSystem removes enemies whose health ran out and rolls for an
// experience orb at the spot they died.
type EnemyDeathSystem struct {
	enemy prefabs.EnemySpec
	orb   prefabs.OrbSpec
	rng   *rand.Rand
}

func NewEnemyDeathSystem(enemy prefabs.EnemySpec, orb prefabs.OrbSpec, rng *rand.Rand) *EnemyDeathSystem {
	return &EnemyDeathSystem{enemy: enemy, orb: orb, rng: rng}
}

func (s *EnemyDeathSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if enemy.Health > 0 {
			return
		}
		pos := cp.Vector{X: t.X, Y: t.Y}
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Type: ecs.EventEnemyKilled, Entity: e})

		if !s.dropsOrb() {
			return
		}
		if _, err := entity.NewExpOrb(w, s.orb, pos); err != nil {
			log.Printf("enemy death: spawn orb: %v", err)
		}
	})
}

func (s *EnemyDeathSystem) dropsOrb() bool {
	chance := s.enemy.OrbDropChance
	if chance <= 0 {
		return false
	}
	if chance >= 1 || s.rng == nil {
		return true
	}
	return s.rng.Float64() >= 1-chance
}
