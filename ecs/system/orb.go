package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// OrbPickupStartSystem flags orbs touching the player's collider for
// collection. Once flagged an orb stays flagged.
type OrbPickupStartSystem struct {
	warn missingWarner
}

func NewOrbPickupStartSystem() *OrbPickupStartSystem {
	return &OrbPickupStartSystem{}
}

func (s *OrbPickupStartSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	pe, _, _, ok := playerEntity(w, &s.warn, "orb pickup")
	if !ok {
		return
	}
	for _, e := range OverlappingWith(w, pe, component.ExpOrbComponent.Kind()) {
		orb, _ := ecs.Get(w, e, component.ExpOrbComponent.Kind())
		orb.Collecting = true
	}
}

// OrbAttractSystem pulls collecting orbs toward the player at a constant
// speed without overshooting.
type OrbAttractSystem struct {
	warn missingWarner
}

func NewOrbAttractSystem() *OrbAttractSystem {
	return &OrbAttractSystem{}
}

func (s *OrbAttractSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	_, _, pt, ok := playerEntity(w, &s.warn, "orb attract")
	if !ok {
		return
	}
	target := cp.Vector{X: pt.X, Y: pt.Y}
	ecs.ForEach2(w, component.ExpOrbComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, orb *component.ExpOrb, t *component.Transform) {
		if !orb.Collecting {
			return
		}
		next := cp.Vector{X: t.X, Y: t.Y}.LerpConst(target, orb.CollectionSpeed*dt)
		t.X = next.X
		t.Y = next.Y
	})
}

// ExpGainSystem credits orbs that reached the player and removes them, so
// each orb pays out exactly once.
type ExpGainSystem struct {
	distance float64
	warn     missingWarner
}

func NewExpGainSystem(collectDistance float64) *ExpGainSystem {
	return &ExpGainSystem{distance: collectDistance}
}

func (s *ExpGainSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	_, p, pt, ok := playerEntity(w, &s.warn, "exp gain")
	if !ok {
		return
	}
	player := cp.Vector{X: pt.X, Y: pt.Y}
	ecs.ForEach2(w, component.ExpOrbComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, orb *component.ExpOrb, t *component.Transform) {
		if !orb.Collecting {
			return
		}
		if player.Distance(cp.Vector{X: t.X, Y: t.Y}) >= s.distance {
			return
		}
		p.Exp += orb.Value
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Type: ecs.EventOrbCollected, Entity: e, Amount: float64(orb.Value)})
	})
}
