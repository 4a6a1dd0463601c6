package main

import (
	"fmt"
	"math"

	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs/system"
	"github.com/milk9111/pizzasurvivor/prefabs"
	"github.com/milk9111/pizzasurvivor/session"
)

type Options struct {
	Tuning  *prefabs.Tuning
	Seed    uint64
	Seconds float64
	Bot     string
}

type Result struct {
	Seed     uint64
	Survived float64
	Died     bool
	Level    int
	Kills    int
	Damage   float64
	Picks    []system.Upgrade
}

func (r Result) String() string {
	end := "alive"
	if r.Died {
		end = "died"
	}
	return fmt.Sprintf("seed %d %s at %.1fs, level %d, %d kills, %.0f damage, picks %v",
		r.Seed, end, r.Survived, r.Level, r.Kills, r.Damage, r.Picks)
}

// circleBot runs in a slow circle, which keeps most enemies trailing
// behind.
type circleBot struct {
	t float64
}

func (b *circleBot) Move() (float64, float64) {
	b.t += common.FixedDelta
	return math.Cos(b.t * 0.5), math.Sin(b.t * 0.5)
}

func newBot(name string) (system.InputSource, error) {
	switch name {
	case "idle":
		return system.InputSourceFunc(func() (float64, float64) { return 0, 0 }), nil
	case "circle":
		return &circleBot{}, nil
	}
	return nil, fmt.Errorf("simulate: unknown bot %q", name)
}

// simulate plays one round at a fixed 1/60 step, always taking the first
// upgrade on offer.
func simulate(opts Options) (Result, error) {
	bot, err := newBot(opts.Bot)
	if err != nil {
		return Result{}, err
	}
	s, err := session.New(session.Config{Tuning: opts.Tuning, Seed: opts.Seed, Input: bot})
	if err != nil {
		return Result{}, err
	}
	if err := s.Start(); err != nil {
		return Result{}, err
	}

	res := Result{Seed: opts.Seed}
	frames := int(math.Ceil(opts.Seconds * common.TPS))
	for played := 0; played < frames; {
		switch s.Phase() {
		case session.PhaseLevelUp:
			offer, err := s.Offer()
			if err != nil {
				return res, err
			}
			if err := s.Select(offer[0]); err != nil {
				return res, err
			}
			res.Picks = append(res.Picks, offer[0])
		case session.PhaseGameplay:
			s.Update(common.FixedDelta)
			played++
		default:
			res.Died = s.Phase() == session.PhaseGameOver
			played = frames
		}
	}
	res.Died = res.Died || s.Phase() == session.PhaseGameOver

	stats := s.Stats()
	res.Survived = stats.Elapsed
	res.Kills = stats.Kills
	res.Damage = stats.Damage
	res.Level = stats.Level
	if p, _, ok := s.Player(); ok {
		res.Level = p.Level
	}
	return res, nil
}
