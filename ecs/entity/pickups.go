package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

func NewExpOrb(w *ecs.World, spec prefabs.OrbSpec, pos cp.Vector) (ecs.Entity, error) {
	return build(w, "exp orb",
		with("orb", component.ExpOrbComponent.Kind(), &component.ExpOrb{
			Value:           spec.Value,
			CollectionSpeed: spec.CollectionSpeed,
		}),
		with("transform", component.TransformComponent.Kind(), transformAt(pos.X, pos.Y)),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
			Shape:  component.SpriteCircle,
			Width:  spec.Size,
			Height: spec.Size,
			Color:  spec.Color.Or(color.NRGBA{R: 240, G: 248, B: 255, A: 255}),
		}),
		layer(component.LayerPickups),
		sensorCircle(spec.ColliderRadius),
		gameplay(),
	)
}

// NewDamageNumber spawns floating text that rises and expires.
func NewDamageNumber(w *ecs.World, spec prefabs.DamageNumberSpec, pos cp.Vector, value float64) (ecs.Entity, error) {
	return build(w, "damage number",
		with("damage number", component.DamageNumberComponent.Kind(), &component.DamageNumber{
			Value: value,
			Life:  spec.Lifetime,
			VelY:  spec.RiseSpeed,
		}),
		with("ttl", component.TTLComponent.Kind(), &component.TTL{Seconds: spec.Lifetime}),
		with("transform", component.TransformComponent.Kind(), transformAt(pos.X, pos.Y)),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
			Color: spec.Color.Or(color.White),
		}),
		layer(component.LayerEffects),
		gameplay(),
	)
}
