package entity

import (
	"image/color"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

// NewBackground lays a checkered grid of tiles centred on the origin.
func NewBackground(w *ecs.World, spec prefabs.BackgroundSpec) ([]ecs.Entity, error) {
	colors := [2]color.Color{
		spec.ColorA.Or(color.NRGBA{R: 59, G: 42, B: 31, A: 255}),
		spec.ColorB.Or(color.NRGBA{R: 69, G: 50, B: 42, A: 255}),
	}
	originX := -float64(spec.Columns) * spec.TileWidth / 2
	originY := -float64(spec.Rows) * spec.TileHeight / 2

	ents := make([]ecs.Entity, 0, spec.Columns*spec.Rows)
	for col := 0; col < spec.Columns; col++ {
		for row := 0; row < spec.Rows; row++ {
			x := originX + (float64(col)+0.5)*spec.TileWidth
			y := originY + (float64(row)+0.5)*spec.TileHeight
			e, err := build(w, "background tile",
				with("tile tag", component.BackgroundTileComponent.Kind(), &component.BackgroundTile{}),
				with("transform", component.TransformComponent.Kind(), transformAt(x, y)),
				with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
					Shape:  component.SpriteRect,
					Width:  spec.TileWidth,
					Height: spec.TileHeight,
					Color:  colors[(col+row)%2],
				}),
				layer(component.LayerBackground),
				gameplay(),
			)
			if err != nil {
				return ents, err
			}
			ents = append(ents, e)
		}
	}
	return ents, nil
}

// NewLevelUpParticles scatters falling coins above the camera. Particle
// positions are camera-relative; the fall system wraps them.
func NewLevelUpParticles(w *ecs.World, spec prefabs.LevelUpSpec, rng *rand.Rand, camera cp.Vector) ([]ecs.Entity, error) {
	a := spec.ColorA.Or(color.NRGBA{R: 255, G: 215, A: 255})
	b := spec.ColorB.Or(color.NRGBA{R: 218, G: 165, B: 32, A: 255})

	ents := make([]ecs.Entity, 0, spec.Particles)
	for i := 0; i < spec.Particles; i++ {
		x := camera.X + (rng.Float64()*2-1)*spec.SpreadX
		y := camera.Y + (rng.Float64()*2-1)*spec.SpreadY + spec.OffsetY
		anim := component.TwoFrameAnimation{
			Timer:  component.NewTimer(spec.FrameSeconds, component.TimerRepeating),
			Frame:  rng.IntN(2),
			Frames: [2]color.Color{a, b},
		}
		e, err := build(w, "level up particle",
			with("particle tag", component.LevelUpParticleComponent.Kind(), &component.LevelUpParticle{}),
			with("animation", component.TwoFrameAnimationComponent.Kind(), &anim),
			with("fall", component.FallComponent.Kind(), &component.Fall{Speed: spec.FallSpeed, Bottom: spec.Bottom, Top: spec.Top}),
			with("transform", component.TransformComponent.Kind(), transformAt(x, y)),
			with("sprite", component.SpriteComponent.Kind(), &component.Sprite{
				Shape:  component.SpriteCircle,
				Width:  spec.Size,
				Height: spec.Size,
				Color:  anim.Frames[anim.Frame],
			}),
			layer(component.LayerOverlay),
		)
		if err != nil {
			return ents, err
		}
		ents = append(ents, e)
	}
	return ents, nil
}

// NewWaveManager creates the wave director singleton.
func NewWaveManager(w *ecs.World, spec prefabs.WavesSpec) (ecs.Entity, error) {
	waves := make([]component.Wave, 0, len(spec.List))
	for _, ws := range spec.List {
		waves = append(waves, component.Wave{
			SpawnEvery: component.NewTimer(ws.SpawnEvery, component.TimerRepeating),
			Size:       ws.Size,
			Template:   TemplateFromSpec(ws.Enemy),
		})
	}
	return build(w, "wave manager",
		with("wave manager", component.WaveManagerComponent.Kind(), &component.WaveManager{
			Window:    spec.Window,
			Growth:    spec.Growth,
			SpawnRing: spec.SpawnRing,
			Jitter:    spec.Jitter,
			Waves:     waves,
		}),
		gameplay(),
	)
}
