package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

func attachedTo(owner ecs.Entity, offset cp.Vector) part {
	return with("attachment", component.AttachmentComponent.Kind(), &component.Attachment{
		Owner:  uint64(owner),
		Offset: offset,
	})
}

func ownerPosition(w *ecs.World, owner ecs.Entity) cp.Vector {
	if t, ok := ecs.Get(w, owner, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}
	}
	return cp.Vector{}
}

// NewWhip attaches a whip to owner at offsetX. The whip is a box sensor that
// is only drawn for the first part of its cycle.
func NewWhip(w *ecs.World, spec prefabs.WhipSpec, owner ecs.Entity, offsetX float64) (ecs.Entity, error) {
	pos := ownerPosition(w, owner)
	return build(w, "whip",
		with("whip", component.WhipComponent.Kind(), &component.Whip{
			Timer:  component.NewTimer(spec.Interval, component.TimerRepeating),
			Damage: spec.Damage,
		}),
		attachedTo(owner, cp.Vector{X: offsetX}),
		with("transform", component.TransformComponent.Kind(), transformAt(pos.X+offsetX, pos.Y)),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
			Shape:  component.SpriteRect,
			Width:  spec.Width,
			Height: spec.Height,
			Color:  spec.Color.Or(color.NRGBA{B: 255, A: 255}),
		}),
		layer(component.LayerWeapons),
		with("physics body", component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:   component.ColliderBox,
			Width:  spec.Width,
			Height: spec.Height,
			Sensor: true,
		}),
		gameplay(),
	)
}

// NewCloseShot creates the launcher that follows owner and fires bullets.
func NewCloseShot(w *ecs.World, spec prefabs.CloseShotSpec, owner ecs.Entity) (ecs.Entity, error) {
	pos := ownerPosition(w, owner)
	return build(w, "close shot",
		with("close shot", component.CloseShotComponent.Kind(), &component.CloseShot{
			Timer:       component.NewTimer(spec.Interval, component.TimerRepeating),
			DamageScale: 1,
		}),
		attachedTo(owner, cp.Vector{}),
		with("transform", component.TransformComponent.Kind(), transformAt(pos.X, pos.Y)),
		gameplay(),
	)
}

func NewCloseShotBullet(w *ecs.World, spec prefabs.CloseShotSpec, pos, dir cp.Vector, damage float64) (ecs.Entity, error) {
	return build(w, "close shot bullet",
		with("bullet", component.CloseShotBulletComponent.Kind(), &component.CloseShotBullet{
			Lifetime: component.NewTimer(spec.BulletLifetime, component.TimerOnce),
			Speed:    spec.BulletSpeed,
			Damage:   damage,
			DirX:     dir.X,
			DirY:     dir.Y,
		}),
		with("transform", component.TransformComponent.Kind(), transformAt(pos.X, pos.Y)),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
			Shape:  component.SpriteRect,
			Width:  spec.BulletSize,
			Height: spec.BulletSize,
			Color:  spec.Color.Or(color.NRGBA{R: 255, G: 165, A: 255}),
		}),
		layer(component.LayerWeapons),
		with("physics body", component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:   component.ColliderBox,
			Width:  spec.BulletSize,
			Height: spec.BulletSize,
			Sensor: true,
		}),
		gameplay(),
	)
}

func NewAreaShot(w *ecs.World, spec prefabs.AreaShotSpec, owner ecs.Entity) (ecs.Entity, error) {
	pos := ownerPosition(w, owner)
	return build(w, "area shot",
		with("area shot", component.AreaShotComponent.Kind(), &component.AreaShot{
			Timer:       component.NewTimer(spec.Interval, component.TimerRepeating),
			DamageScale: 1,
		}),
		attachedTo(owner, cp.Vector{}),
		with("transform", component.TransformComponent.Kind(), transformAt(pos.X, pos.Y)),
		gameplay(),
	)
}

// NewAreaShotBullet drops a damage zone that pulses every PulseInterval
// until its lifetime runs out.
func NewAreaShotBullet(w *ecs.World, spec prefabs.AreaShotSpec, pos cp.Vector, damagePerPulse float64) (ecs.Entity, error) {
	return build(w, "area shot bullet",
		with("bullet", component.AreaShotBulletComponent.Kind(), &component.AreaShotBullet{
			Lifetime:       component.NewTimer(spec.Lifetime, component.TimerOnce),
			Pulse:          component.NewTimer(spec.PulseInterval, component.TimerRepeating),
			DamagePerPulse: damagePerPulse,
		}),
		with("transform", component.TransformComponent.Kind(), transformAt(pos.X, pos.Y)),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
			Shape:  component.SpriteCircle,
			Width:  spec.Size,
			Height: spec.Size,
			Color:  spec.Color.Or(color.NRGBA{R: 46, G: 139, B: 87, A: 128}),
		}),
		layer(component.LayerPickups),
		sensorCircle(spec.Size/2),
		gameplay(),
	)
}
