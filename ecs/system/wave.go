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

// WaveSystem advances the wave clock and spawns batches of the active
// wave's enemies on a ring around the player.
type WaveSystem struct {
	enemy prefabs.EnemySpec
	rng   *rand.Rand
	warn  missingWarner
}

func NewWaveSystem(enemy prefabs.EnemySpec, rng *rand.Rand) *WaveSystem {
	return &WaveSystem{enemy: enemy, rng: rng}
}

func (s *WaveSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || s.rng == nil {
		return
	}
	me, ok := ecs.First(w, component.WaveManagerComponent.Kind())
	if !ok {
		s.warn.missing("wave", "wave manager")
		return
	}
	_, _, pt, ok := playerEntity(w, &s.warn, "wave")
	if !ok {
		return
	}
	m, _ := ecs.Get(w, me, component.WaveManagerComponent.Kind())

	m.Elapsed += dt
	wave := m.Active()
	if wave == nil {
		return
	}
	wave.SpawnEvery.Tick(dt)
	if !wave.SpawnEvery.JustFinished() {
		return
	}

	center := cp.Vector{X: pt.X, Y: pt.Y}
	mult := m.Multiplier()
	n := m.BatchSize()
	for i := 0; i < n; i++ {
		pos := common.RingPoint(s.rng, center, m.SpawnRing, m.Jitter)
		if _, err := entity.NewEnemy(w, s.enemy, wave.Template, mult, pos); err != nil {
			log.Printf("wave: spawn enemy: %v", err)
			return
		}
	}
}
