package session

import "errors"

var (
	ErrInvalidTransition = errors.New("session: invalid phase transition")
	ErrNoOffer           = errors.New("session: no upgrade offer outstanding")
	ErrNotOffered        = errors.New("session: upgrade was not offered")
)

type Phase int

const (
	PhaseMainMenu Phase = iota
	PhaseStartingLoop
	PhaseGameplay
	PhaseLevelUp
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhaseStartingLoop:
		return "starting_loop"
	case PhaseGameplay:
		return "gameplay"
	case PhaseLevelUp:
		return "level_up"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

var transitions = map[Phase][]Phase{
	PhaseMainMenu:     {PhaseStartingLoop},
	PhaseStartingLoop: {PhaseGameplay, PhaseMainMenu},
	PhaseGameplay:     {PhaseLevelUp, PhaseGameOver, PhaseMainMenu},
	PhaseLevelUp:      {PhaseGameplay, PhaseMainMenu},
	PhaseGameOver:     {PhaseMainMenu, PhaseStartingLoop},
}

// CanTransition reports whether from -> to is an edge of the phase graph.
func CanTransition(from, to Phase) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
