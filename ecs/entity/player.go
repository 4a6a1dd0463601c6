package entity

import (
	"image/color"

	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

// NewPlayer spawns the player at the origin with an empty loadout.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	return build(w, "player",
		with("player tag", component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		with("player", component.PlayerComponent.Kind(), &component.Player{
			Exp:          0,
			NextLevelExp: spec.NextLevelExp,
			Level:        1,
			Speed:        spec.Speed,
			Health:       spec.Health,
			MaxHealth:    spec.Health,
			Facing:       component.FacingRight,
		}),
		with("input", component.InputComponent.Kind(), &component.Input{}),
		with("loadout", component.LoadoutComponent.Kind(), &component.Loadout{}),
		with("transform", component.TransformComponent.Kind(), transformAt(0, 0)),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
			Shape:  component.SpriteCircle,
			Width:  spec.Size,
			Height: spec.Size,
			Color:  spec.Color.Or(color.NRGBA{R: 242, G: 193, B: 78, A: 255}),
		}),
		layer(component.LayerPlayer),
		sensorCircle(spec.ColliderRadius),
		gameplay(),
	)
}
