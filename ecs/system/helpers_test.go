package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

const frame = 1.0 / 60.0

func loadTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	return tuning
}

// newPlayerWorld returns a world holding only the player at the origin.
func newPlayerWorld(t *testing.T) (*ecs.World, *prefabs.Tuning, ecs.Entity) {
	t.Helper()
	tuning := loadTuning(t)
	w := ecs.NewWorld()
	pe, err := entity.NewPlayer(w, tuning.Player)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	return w, tuning, pe
}

func playerOf(t *testing.T, w *ecs.World, pe ecs.Entity) *component.Player {
	t.Helper()
	p, ok := ecs.Get(w, pe, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("player component missing")
	}
	return p
}

func spawnEnemy(t *testing.T, w *ecs.World, tuning *prefabs.Tuning, tmpl component.EnemyTemplate, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(w, tuning.Enemy, tmpl, 1, pos)
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	return e
}

func cpVec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func drainTypes(w *ecs.World) map[ecs.EventType]int {
	out := make(map[ecs.EventType]int)
	for _, ev := range w.Events().Drain() {
		out[ev.Type]++
	}
	return out
}
