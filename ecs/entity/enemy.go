package entity

import (
	"image/color"

	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/prefabs"
	"golang.org/x/image/colornames"
)

// assetTints gives toppings other than the default their own colour.
var assetTints = map[string]color.Color{
	"mushroom": colornames.Tan,
	"anchovy":  colornames.Slategray,
}

// NewEnemy spawns one enemy from a wave template. mult scales speed and
// health for later wave cycles.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, tmpl component.EnemyTemplate, mult float64, pos cp.Vector) (ecs.Entity, error) {
	if mult <= 0 {
		mult = 1
	}
	parts := []part{
		with("enemy", component.EnemyComponent.Kind(), &component.Enemy{
			Speed:           tmpl.Speed * mult,
			Health:          tmpl.Health * mult,
			Asset:           tmpl.Asset,
			DamagePerSecond: tmpl.DamagePerSecond,
			SpeedScale:      1,
		}),
		with("transform", component.TransformComponent.Kind(), transformAt(pos.X, pos.Y)),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
			Shape:  component.SpriteCircle,
			Width:  spec.Size,
			Height: spec.Size,
			Color:  enemyColor(spec, tmpl.Asset),
		}),
		layer(component.LayerEnemies),
		with("physics body", component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:    component.ColliderCircle,
			Radius:  spec.ColliderRadius,
			Dynamic: true,
		}),
		gameplay(),
	}
	if tmpl.Script != "" {
		parts = append(parts, with("script", component.EnemyScriptComponent.Kind(), &component.EnemyScript{
			Path:  tmpl.Script,
			State: &tengo.Map{Value: map[string]tengo.Object{}},
		}))
	}
	return build(w, "enemy", parts...)
}

// TemplateFromSpec converts a wave's enemy block to the component form.
func TemplateFromSpec(spec prefabs.EnemyTemplateSpec) component.EnemyTemplate {
	return component.EnemyTemplate{
		Speed:           spec.Speed,
		Health:          spec.Health,
		DamagePerSecond: spec.DamagePerSecond,
		Asset:           spec.Asset,
		Script:          spec.Script,
	}
}

func enemyColor(spec prefabs.EnemySpec, asset string) color.Color {
	if c, ok := assetTints[asset]; ok {
		return c
	}
	return spec.Color.Or(color.NRGBA{R: 255, A: 255})
}
