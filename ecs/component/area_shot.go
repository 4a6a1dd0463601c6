package component

// AreaShot drops a lingering damage zone near its owner each time Timer
// completes.
type AreaShot struct {
	Timer       Timer
	DamageScale float64
}

var AreaShotComponent = NewComponent[AreaShot]()

type AreaShotBullet struct {
	Lifetime       Timer
	Pulse          Timer
	DamagePerPulse float64
}

var AreaShotBulletComponent = NewComponent[AreaShotBullet]()
