package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
)

func TestDamageNumberRisesAndExpires(t *testing.T) {
	tuning := loadTuning(t)
	w := ecs.NewWorld()
	e, err := entity.NewDamageNumber(w, tuning.DamageNumbers, cp.Vector{}, 5)
	if err != nil {
		t.Fatal(err)
	}

	drift := NewDamageNumberSystem()
	ttl := NewTTLSystem()
	half := tuning.DamageNumbers.Lifetime / 2

	drift.Update(w, half)
	ttl.Update(w, half)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if !near(tr.Y, tuning.DamageNumbers.RiseSpeed*half, 1e-9) {
		t.Fatalf("expected number to rise to %v, got %v", tuning.DamageNumbers.RiseSpeed*half, tr.Y)
	}
	if !w.IsAlive(e) {
		t.Fatalf("expected number alive at half life")
	}

	ttl.Update(w, half)
	if w.IsAlive(e) {
		t.Fatalf("expected number removed after its lifetime")
	}
}
