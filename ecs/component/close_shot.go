package component

// CloseShot fires a bullet at the nearest enemy each time Timer completes.
type CloseShot struct {
	Timer       Timer
	DamageScale float64
}

var CloseShotComponent = NewComponent[CloseShot]()

type CloseShotBullet struct {
	Lifetime Timer
	Speed    float64
	Damage   float64
	DirX     float64
	DirY     float64
}

var CloseShotBulletComponent = NewComponent[CloseShotBullet]()
