package component

// Transform is a world-space position in world units (y up). Scale
// multiplies the sprite size when drawn.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
