package component

import "image/color"

// TwoFrameAnimation alternates a sprite between two colours.
type TwoFrameAnimation struct {
	Timer  Timer
	Frame  int
	Frames [2]color.Color
}

var TwoFrameAnimationComponent = NewComponent[TwoFrameAnimation]()

// Fall moves an entity down at Speed and wraps it from Bottom back to Top,
// relative to the camera.
type Fall struct {
	Speed  float64
	Bottom float64
	Top    float64
}

var FallComponent = NewComponent[Fall]()
