package system

import (
	"log"

	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// missingWarner logs once when a system skips its tick because a singleton
// it depends on is absent, and re-arms once the singleton comes back.
type missingWarner struct {
	warned bool
}

func (m *missingWarner) missing(system, what string) {
	if m.warned {
		return
	}
	m.warned = true
	log.Printf("%s: no %s entity, skipping", system, what)
}

func (m *missingWarner) found() {
	m.warned = false
}

// playerEntity resolves the player singleton, warning through m if absent.
func playerEntity(w *ecs.World, m *missingWarner, system string) (ecs.Entity, *component.Player, *component.Transform, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		m.missing(system, "player")
		return 0, nil, nil, false
	}
	p, okP := ecs.Get(w, e, component.PlayerComponent.Kind())
	t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	if !okP || !okT {
		m.missing(system, "player")
		return 0, nil, nil, false
	}
	m.found()
	return e, p, t, true
}
