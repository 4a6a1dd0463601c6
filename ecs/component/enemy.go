package component

// Enemy stats. SpeedScale is driven by behaviour scripts and stays 1 for
// plain chasers.
type Enemy struct {
	Speed           float64
	Health          float64
	Asset           string
	DamagePerSecond float64
	SpeedScale      float64
}

var EnemyComponent = NewComponent[Enemy]()
