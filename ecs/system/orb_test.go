package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
)

func TestExpGainCreditsOnce(t *testing.T) {
	cases := []struct {
		name       string
		pos        cp.Vector
		collecting bool
		wantExp    int
	}{
		{"inside_collect_distance", cp.Vector{X: 0.1}, true, 1},
		{"not_collecting", cp.Vector{X: 0.1}, false, 0},
		{"outside_collect_distance", cp.Vector{X: 0.5}, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, tuning, pe := newPlayerWorld(t)
			orb, err := entity.NewExpOrb(w, tuning.Orb, c.pos)
			if err != nil {
				t.Fatal(err)
			}
			o, _ := ecs.Get(w, orb, component.ExpOrbComponent.Kind())
			o.Collecting = c.collecting

			sys := NewExpGainSystem(tuning.Orb.CollectDistance)
			for i := 0; i < 3; i++ {
				sys.Update(w, frame)
			}

			if got := playerOf(t, w, pe).Exp; got != c.wantExp {
				t.Fatalf("expected exp %d, got %d", c.wantExp, got)
			}
			if w.IsAlive(orb) == (c.wantExp > 0) {
				t.Fatalf("expected orb alive=%v", c.wantExp == 0)
			}
		})
	}
}

func TestOrbPickupPipeline(t *testing.T) {
	w, tuning, pe := newPlayerWorld(t)
	orb, err := entity.NewExpOrb(w, tuning.Orb, cp.Vector{X: 1.5})
	if err != nil {
		t.Fatal(err)
	}
	far, err := entity.NewExpOrb(w, tuning.Orb, cp.Vector{X: 15})
	if err != nil {
		t.Fatal(err)
	}

	physics := NewPhysicsSystem()
	start := NewOrbPickupStartSystem()
	attract := NewOrbAttractSystem()
	gain := NewExpGainSystem(tuning.Orb.CollectDistance)
	for i := 0; i < 120; i++ {
		attract.Update(w, frame)
		physics.Update(w, frame)
		start.Update(w, frame)
		gain.Update(w, frame)
	}

	if w.IsAlive(orb) {
		t.Fatalf("expected nearby orb to be collected")
	}
	if !w.IsAlive(far) {
		t.Fatalf("expected far orb to remain")
	}
	if got := playerOf(t, w, pe).Exp; got != tuning.Orb.Value {
		t.Fatalf("expected exp %d, got %d", tuning.Orb.Value, got)
	}
	if n := drainTypes(w)[ecs.EventOrbCollected]; n != 1 {
		t.Fatalf("expected one collection event, got %d", n)
	}
}
