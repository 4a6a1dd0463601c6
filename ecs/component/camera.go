package component

// Camera follows the player. ViewHeight is how many world units fit
// vertically on screen; the width follows the window aspect.
type Camera struct {
	Zoom       float64
	ViewHeight float64
}

var CameraComponent = NewComponent[Camera]()
