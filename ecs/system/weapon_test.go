package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
)

func TestNearestEnemy(t *testing.T) {
	cases := []struct {
		name    string
		enemies []cp.Vector
		dead    []cp.Vector
		want    cp.Vector
		found   bool
	}{
		{"none", nil, nil, cp.Vector{}, false},
		{"single", []cp.Vector{{X: 3, Y: 4}}, nil, cp.Vector{X: 3, Y: 4}, true},
		{"closest_wins", []cp.Vector{{X: 10}, {X: -2, Y: 1}, {Y: 5}}, nil, cp.Vector{X: -2, Y: 1}, true},
		{"dead_enemy_ignored", []cp.Vector{{X: 4}}, []cp.Vector{{X: 1}}, cp.Vector{X: 4}, true},
		{"only_dead", nil, []cp.Vector{{X: 1}}, cp.Vector{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, tuning, _ := newPlayerWorld(t)
			for _, pos := range c.enemies {
				spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 5}, pos)
			}
			for _, pos := range c.dead {
				e := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 5}, pos)
				enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
				enemy.Health = 0
			}
			got, ok := NearestEnemy(w, cp.Vector{})
			if ok != c.found || got != c.want {
				t.Fatalf("expected %v (%v), got %v (%v)", c.want, c.found, got, ok)
			}
		})
	}
}

func TestWhipHitsOverlappingEnemiesOncePerCycle(t *testing.T) {
	w, tuning, pe := newPlayerWorld(t)
	whip, err := entity.NewWhip(w, tuning.Whip, pe, tuning.Whip.Offset)
	if err != nil {
		t.Fatal(err)
	}
	inside := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 100}, cp.Vector{X: tuning.Whip.Offset})
	outside := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 100}, cp.Vector{X: -tuning.Whip.Offset})

	physics := NewPhysicsSystem()
	attack := NewWhipAttackSystem(tuning.Whip, NewHitReporter(tuning.DamageNumbers, tuning.Enemy))
	physics.Update(w, frame)
	// half a cycle, then the rest
	attack.Update(w, tuning.Whip.Interval/2)
	sprite, _ := ecs.Get(w, whip, component.SpriteComponent.Kind())
	if !sprite.Hidden {
		t.Fatalf("expected whip hidden mid-cycle")
	}
	attack.Update(w, tuning.Whip.Interval/2)

	in, _ := ecs.Get(w, inside, component.EnemyComponent.Kind())
	out, _ := ecs.Get(w, outside, component.EnemyComponent.Kind())
	if in.Health != 100-tuning.Whip.Damage {
		t.Fatalf("expected overlapping enemy at %v, got %v", 100-tuning.Whip.Damage, in.Health)
	}
	if out.Health != 100 {
		t.Fatalf("expected enemy behind the player untouched, got %v", out.Health)
	}
	if !ecs.Has(w, inside, component.HitFlashComponent.Kind()) {
		t.Fatalf("expected whip hit to flash the enemy")
	}
	if n := ecs.Count(w, component.DamageNumberComponent.Kind()); n != 1 {
		t.Fatalf("expected one damage number, got %d", n)
	}
	if n := drainTypes(w)[ecs.EventDamageDealt]; n != 1 {
		t.Fatalf("expected one damage event, got %d", n)
	}
}

func TestWhipFacingFollowsPlayer(t *testing.T) {
	w, tuning, pe := newPlayerWorld(t)
	whip, err := entity.NewWhip(w, tuning.Whip, pe, tuning.Whip.Offset)
	if err != nil {
		t.Fatal(err)
	}
	playerOf(t, w, pe).Facing = component.FacingLeft

	NewWhipFacingSystem(tuning.Whip).Update(w, frame)
	NewAttachmentSystem().Update(w, frame)

	tr, _ := ecs.Get(w, whip, component.TransformComponent.Kind())
	if tr.X != -tuning.Whip.Offset {
		t.Fatalf("expected whip at %v, got %v", -tuning.Whip.Offset, tr.X)
	}
}

func TestCloseShotFiresAtNearestEnemy(t *testing.T) {
	w, tuning, pe := newPlayerWorld(t)
	if _, err := entity.NewCloseShot(w, tuning.CloseShot, pe); err != nil {
		t.Fatal(err)
	}
	target := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 100}, cp.Vector{Y: 2})

	hits := NewHitReporter(tuning.DamageNumbers, tuning.Enemy)
	shots := NewCloseShotSystem(tuning.CloseShot)
	shots.Update(w, tuning.CloseShot.Interval)

	bullets := w.Query(component.CloseShotBulletComponent.Kind())
	if len(bullets) != 1 {
		t.Fatalf("expected one bullet, got %d", len(bullets))
	}
	b, _ := ecs.Get(w, bullets[0], component.CloseShotBulletComponent.Kind())
	if !near(b.DirX, 0, 1e-9) || !near(b.DirY, 1, 1e-9) {
		t.Fatalf("expected bullet aimed at +y, got (%v, %v)", b.DirX, b.DirY)
	}

	physics := NewPhysicsSystem()
	flight := NewCloseShotBulletSystem(hits)
	for i := 0; i < 60 && w.IsAlive(bullets[0]); i++ {
		flight.Update(w, frame)
		physics.Update(w, frame)
	}
	if w.IsAlive(bullets[0]) {
		t.Fatalf("expected bullet to be spent on the enemy")
	}
	enemy, _ := ecs.Get(w, target, component.EnemyComponent.Kind())
	if enemy.Health != 100-tuning.CloseShot.BulletDamage {
		t.Fatalf("expected enemy health %v, got %v", 100-tuning.CloseShot.BulletDamage, enemy.Health)
	}
}

func TestCloseShotBulletSkipsDeadEnemies(t *testing.T) {
	w, tuning, _ := newPlayerWorld(t)
	at := cp.Vector{X: 6}
	corpse := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 100}, at)
	corpseEnemy, _ := ecs.Get(w, corpse, component.EnemyComponent.Kind())
	corpseEnemy.Health = 0
	living := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 100}, at)

	bullet, err := entity.NewCloseShotBullet(w, tuning.CloseShot, at, cp.Vector{X: 1}, 7)
	if err != nil {
		t.Fatal(err)
	}

	physics := NewPhysicsSystem()
	flight := NewCloseShotBulletSystem(NewHitReporter(tuning.DamageNumbers, tuning.Enemy))
	for i := 0; i < 10 && w.IsAlive(bullet); i++ {
		physics.Update(w, frame)
		flight.Update(w, frame)
	}
	if w.IsAlive(bullet) {
		t.Fatalf("expected bullet to be spent on the living enemy")
	}
	if corpseEnemy.Health != 0 {
		t.Fatalf("expected the dead enemy untouched, got health %v", corpseEnemy.Health)
	}
	livingEnemy, _ := ecs.Get(w, living, component.EnemyComponent.Kind())
	if livingEnemy.Health != 93 {
		t.Fatalf("expected living enemy at 93, got %v", livingEnemy.Health)
	}
}

func TestCloseShotHoldsFireWithoutEnemies(t *testing.T) {
	w, tuning, pe := newPlayerWorld(t)
	if _, err := entity.NewCloseShot(w, tuning.CloseShot, pe); err != nil {
		t.Fatal(err)
	}
	NewCloseShotSystem(tuning.CloseShot).Update(w, tuning.CloseShot.Interval*3)
	if n := ecs.Count(w, component.CloseShotBulletComponent.Kind()); n != 0 {
		t.Fatalf("expected no bullets, got %d", n)
	}
}

func TestAreaShotBulletPulses(t *testing.T) {
	w, tuning, _ := newPlayerWorld(t)
	zone, err := entity.NewAreaShotBullet(w, tuning.AreaShot, cp.Vector{X: 10}, 2)
	if err != nil {
		t.Fatal(err)
	}
	target := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 100}, cp.Vector{X: 10})

	physics := NewPhysicsSystem()
	pulses := NewAreaShotBulletSystem(NewHitReporter(tuning.DamageNumbers, tuning.Enemy))
	physics.Update(w, frame)
	for i := 0; i < 3; i++ {
		pulses.Update(w, tuning.AreaShot.PulseInterval)
	}
	enemy, _ := ecs.Get(w, target, component.EnemyComponent.Kind())
	if enemy.Health != 94 {
		t.Fatalf("expected three pulses of 2, health %v", enemy.Health)
	}

	pulses.Update(w, tuning.AreaShot.Lifetime)
	if w.IsAlive(zone) {
		t.Fatalf("expected zone to expire")
	}
}
