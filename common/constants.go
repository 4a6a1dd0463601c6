package common

const (
	WindowWidth  = 948
	WindowHeight = 533

	// RenderWidth and RenderHeight are the logical screen size the game is
	// laid out in; ebiten scales it to the window.
	RenderWidth  = 1920
	RenderHeight = 1080

	// ViewHeight is the number of world units visible vertically.
	ViewHeight = 20.0

	TPS        = 60
	FixedDelta = 1.0 / TPS

	// HealthEpsilon absorbs float drift when damage is accumulated per frame.
	HealthEpsilon = 1e-6
)
