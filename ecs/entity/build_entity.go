package entity

import (
	"fmt"

	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// part attaches one component to an entity under construction.
type part struct {
	name string
	add  func(w *ecs.World, e ecs.Entity) error
}

func with[T any](name string, kind component.ComponentKind[T], value *T) part {
	return part{name: name, add: func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, kind, value)
	}}
}

// build creates an entity from parts in order. A failing part destroys the
// half-built entity so nothing partial is left in the world.
func build(w *ecs.World, label string, parts ...part) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: world is nil", label)
	}
	e := ecs.CreateEntity(w)
	for _, p := range parts {
		if err := p.add(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: add %s: %w", label, p.name, err)
		}
	}
	return e, nil
}

func transformAt(x, y float64) *component.Transform {
	return &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

func gameplay() part {
	return with("gameplay tag", component.GameplayEntityComponent.Kind(), &component.GameplayEntity{})
}

func layer(index int) part {
	return with("render layer", component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: index})
}

func sensorCircle(radius float64) part {
	return with("physics body", component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.ColliderCircle,
		Radius: radius,
		Sensor: true,
	})
}
