package component

import "image/color"

type SpriteShape int

const (
	SpriteRect SpriteShape = iota
	SpriteCircle
)

// Sprite is a flat-coloured shape centred on the entity's transform. Width
// and Height are in world units.
type Sprite struct {
	Shape  SpriteShape
	Width  float64
	Height float64
	Color  color.Color
	FlipX  bool
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
