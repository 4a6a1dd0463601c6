package system

import (
	"math"

	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// LevelSystem promotes the player when experience reaches the threshold and
// raises EventLevelUp. At most one level is gained per frame; leftover
// experience is discarded.
type LevelSystem struct {
	growth float64
	warn   missingWarner
}

func NewLevelSystem(growth float64) *LevelSystem {
	return &LevelSystem{growth: growth}
}

func (s *LevelSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	pe, p, _, ok := playerEntity(w, &s.warn, "level")
	if !ok {
		return
	}
	if LevelUp(p, s.growth) {
		w.Events().Push(ecs.Event{Type: ecs.EventLevelUp, Entity: pe, Amount: float64(p.Level)})
	}
}

// LevelUp applies one promotion if p.Exp >= p.NextLevelExp: experience
// resets to zero, the threshold becomes round(threshold*growth) and the
// level increments.
func LevelUp(p *component.Player, growth float64) bool {
	if p == nil || p.Exp < p.NextLevelExp {
		return false
	}
	p.Exp = 0
	next := int(math.Round(float64(p.NextLevelExp) * growth))
	if next <= p.NextLevelExp {
		next = p.NextLevelExp + 1
	}
	p.NextLevelExp = next
	p.Level++
	return true
}

// GameOverSystem raises EventPlayerDied once, in the frame the player's
// health reaches zero.
type GameOverSystem struct {
	reported ecs.Entity
	warn     missingWarner
}

func NewGameOverSystem() *GameOverSystem {
	return &GameOverSystem{}
}

func (s *GameOverSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	pe, p, _, ok := playerEntity(w, &s.warn, "game over")
	if !ok {
		return
	}
	if p.Health > 0 || s.reported == pe {
		return
	}
	s.reported = pe
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: pe})
}
