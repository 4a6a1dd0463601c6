package component

import "math"

// EnemyTemplate is the base stat block of a wave's enemies before the cycle
// multiplier is applied.
type EnemyTemplate struct {
	Speed           float64
	Health          float64
	DamagePerSecond float64
	Asset           string
	Script          string
}

type Wave struct {
	SpawnEvery Timer
	Size       int
	Template   EnemyTemplate
}

// WaveManager selects the active wave from elapsed play time. Waves repeat
// once the list is exhausted and every full pass multiplies batch size and
// enemy stats by Growth.
type WaveManager struct {
	Elapsed   float64
	Window    float64
	Growth    float64
	SpawnRing float64
	Jitter    float64
	Waves     []Wave
}

var WaveManagerComponent = NewComponent[WaveManager]()

// CurrentWave is floor(Elapsed / Window).
func (m *WaveManager) CurrentWave() int {
	if m == nil || m.Window <= 0 || m.Elapsed <= 0 {
		return 0
	}
	return int(math.Floor(m.Elapsed / m.Window))
}

// Cycles is how many full passes over Waves have completed.
func (m *WaveManager) Cycles() int {
	if m == nil || len(m.Waves) == 0 {
		return 0
	}
	return m.CurrentWave() / len(m.Waves)
}

// Multiplier is Growth^Cycles.
func (m *WaveManager) Multiplier() float64 {
	if m == nil || m.Growth <= 0 {
		return 1
	}
	return math.Pow(m.Growth, float64(m.Cycles()))
}

// Active returns the wave selected by CurrentWave mod len(Waves).
func (m *WaveManager) Active() *Wave {
	if m == nil || len(m.Waves) == 0 {
		return nil
	}
	return &m.Waves[m.CurrentWave()%len(m.Waves)]
}

// BatchSize is floor(Size * Multiplier), never below one.
func (m *WaveManager) BatchSize() int {
	wave := m.Active()
	if wave == nil {
		return 0
	}
	n := int(math.Floor(float64(wave.Size) * m.Multiplier()))
	if n < 1 {
		return 1
	}
	return n
}
