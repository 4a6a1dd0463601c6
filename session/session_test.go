package session

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
	"github.com/milk9111/pizzasurvivor/ecs/system"
	"github.com/milk9111/pizzasurvivor/prefabs"
	"github.com/milk9111/pizzasurvivor/records"
)

const frame = 1.0 / 60.0

// quietTuning never spawns waves so tests control every enemy.
func quietTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	for i := range tuning.Waves.List {
		tuning.Waves.List[i].SpawnEvery = 1e9
	}
	return tuning
}

func newSession(t *testing.T, rec Recorder) *Session {
	t.Helper()
	s, err := New(Config{Tuning: quietTuning(t), Seed: 7, Recorder: rec})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func startedSession(t *testing.T, rec Recorder) *Session {
	t.Helper()
	s := newSession(t, rec)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func addEnemy(t *testing.T, s *Session, tmpl component.EnemyTemplate, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(s.World(), s.Tuning().Enemy, tmpl, 1, pos)
	if err != nil {
		t.Fatalf("new enemy: %v", err)
	}
	return e
}

func TestStartBuildsRound(t *testing.T) {
	s := startedSession(t, nil)
	if s.Phase() != PhaseGameplay {
		t.Fatalf("expected gameplay, got %s", s.Phase())
	}
	w := s.World()
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"player", ecs.Count(w, component.PlayerTagComponent.Kind()), 1},
		{"camera", ecs.Count(w, component.CameraTagComponent.Kind()), 1},
		{"whip", ecs.Count(w, component.WhipComponent.Kind()), 1},
		{"wave_manager", ecs.Count(w, component.WaveManagerComponent.Kind()), 1},
		{"background", ecs.Count(w, component.BackgroundTileComponent.Kind()), s.Tuning().Background.Columns * s.Tuning().Background.Rows},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("expected %d, got %d", c.want, c.got)
			}
		})
	}
}

func TestTransitions(t *testing.T) {
	cases := []struct {
		from, to Phase
		ok       bool
	}{
		{PhaseMainMenu, PhaseStartingLoop, true},
		{PhaseMainMenu, PhaseGameplay, false},
		{PhaseGameplay, PhaseLevelUp, true},
		{PhaseGameplay, PhaseGameOver, true},
		{PhaseLevelUp, PhaseGameplay, true},
		{PhaseLevelUp, PhaseGameOver, false},
		{PhaseGameOver, PhaseStartingLoop, true},
		{PhaseGameOver, PhaseMainMenu, true},
		{PhaseGameOver, PhaseGameplay, false},
	}
	for _, c := range cases {
		t.Run(c.from.String()+"_to_"+c.to.String(), func(t *testing.T) {
			if got := CanTransition(c.from, c.to); got != c.ok {
				t.Fatalf("expected %v, got %v", c.ok, got)
			}
		})
	}

	s := newSession(t, nil)
	if err := s.Transition(PhaseGameOver); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if s.Phase() != PhaseMainMenu {
		t.Fatalf("failed transition changed the phase to %s", s.Phase())
	}
}

func TestUpdateOnlyRunsDuringPlay(t *testing.T) {
	s := newSession(t, nil)
	s.Update(frame)
	if s.Stats().Elapsed != 0 {
		t.Fatalf("main menu should not advance the clock")
	}
}

// A 10 dps enemy sitting on a 100 hp player: half health at 5s, game over
// at 10s.
func TestContactDamageEndToEnd(t *testing.T) {
	rec := records.NewStore(nil)
	s := startedSession(t, rec)
	addEnemy(t, s, component.EnemyTemplate{Health: 1e6, DamagePerSecond: 10}, cp.Vector{})

	for i := 0; i < 300; i++ {
		s.Update(frame)
	}
	p, _, ok := s.Player()
	if !ok {
		t.Fatal("player missing")
	}
	if !near(p.Health, 50, 1e-6) {
		t.Fatalf("expected 50 hp after 5s, got %v", p.Health)
	}

	for i := 300; i < 599; i++ {
		s.Update(frame)
	}
	if s.Phase() != PhaseGameplay {
		t.Fatalf("game ended early at %vs", s.Stats().Elapsed)
	}

	s.Update(frame)
	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected game over at 10s, phase %s, elapsed %v", s.Phase(), s.Stats().Elapsed)
	}
	if e := s.Stats().Elapsed; e < 9.99 || e > 10.02 {
		t.Fatalf("expected game over at ~10s, got %v", e)
	}

	run, improved := s.LastRun()
	if !improved || !near(run.Survived, 10, 0.02) {
		t.Fatalf("expected a first record of ~10s, got %+v improved=%v", run, improved)
	}
	if best, ok := rec.Best(); !ok || best.Survived != run.Survived {
		t.Fatalf("expected recorder to hold the run, got %+v", best)
	}

	// frozen until the player leaves the screen
	s.Update(frame)
	if s.Stats().Elapsed != run.Survived {
		t.Fatalf("game over should not advance the clock")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if n := ecs.Count(s.World(), component.EnemyComponent.Kind()); n != 0 {
		t.Fatalf("expected old enemies gone after restart, got %d", n)
	}
	if p, _, _ := s.Player(); p.Health != 100 {
		t.Fatalf("expected fresh player, got %v hp", p.Health)
	}
}

func TestLevelUpOfferAndSelect(t *testing.T) {
	s := startedSession(t, nil)
	if _, err := s.Offer(); !errors.Is(err, ErrNoOffer) {
		t.Fatalf("expected ErrNoOffer during gameplay, got %v", err)
	}

	pe, _ := ecs.First(s.World(), component.PlayerTagComponent.Kind())
	p, _ := ecs.Get(s.World(), pe, component.PlayerComponent.Kind())
	p.Exp = p.NextLevelExp

	s.Update(frame)
	if s.Phase() != PhaseLevelUp {
		t.Fatalf("expected level-up phase, got %s", s.Phase())
	}
	if n := ecs.Count(s.World(), component.LevelUpParticleComponent.Kind()); n != s.Tuning().LevelUp.Particles {
		t.Fatalf("expected %d particles, got %d", s.Tuning().LevelUp.Particles, n)
	}

	offer, err := s.Offer()
	if err != nil {
		t.Fatal(err)
	}
	if len(offer) != 2 || offer[0] == offer[1] {
		t.Fatalf("expected two distinct choices, got %v", offer)
	}

	before := s.Stats().Elapsed
	s.Update(frame)
	if s.Stats().Elapsed != before {
		t.Fatalf("level-up should pause the round clock")
	}

	var missing system.Upgrade = -1
	for _, u := range system.Upgrades {
		if u != offer[0] && u != offer[1] {
			missing = u
			break
		}
	}
	if err := s.Select(missing); !errors.Is(err, ErrNotOffered) {
		t.Fatalf("expected ErrNotOffered, got %v", err)
	}

	if err := s.Select(offer[0]); err != nil {
		t.Fatalf("select: %v", err)
	}
	if s.Phase() != PhaseGameplay {
		t.Fatalf("expected to resume gameplay, got %s", s.Phase())
	}
	if n := ecs.Count(s.World(), component.LevelUpParticleComponent.Kind()); n != 0 {
		t.Fatalf("expected particles cleared, got %d", n)
	}
	if p.Level != 2 || s.Stats().Level != 2 {
		t.Fatalf("expected level 2, got player %d stats %d", p.Level, s.Stats().Level)
	}
}

func TestKillsAndOrbsCounted(t *testing.T) {
	s := startedSession(t, nil)
	addEnemy(t, s, component.EnemyTemplate{Health: 0.5}, cp.Vector{X: s.Tuning().Whip.Offset})

	// the starting whip fires at the end of its first cycle
	frames := int(s.Tuning().Whip.Interval*60) + 2
	for i := 0; i < frames; i++ {
		s.Update(frame)
	}
	st := s.Stats()
	if st.Kills != 1 {
		t.Fatalf("expected one kill, got %d", st.Kills)
	}
	if st.Damage != s.Tuning().Whip.Damage {
		t.Fatalf("expected %v damage, got %v", s.Tuning().Whip.Damage, st.Damage)
	}
}

func TestQuitReturnsToMenu(t *testing.T) {
	s := startedSession(t, nil)
	if err := s.Quit(); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseMainMenu {
		t.Fatalf("expected main menu, got %s", s.Phase())
	}
	if n := ecs.Count(s.World(), component.GameplayEntityComponent.Kind()); n != 0 {
		t.Fatalf("expected round entities cleared, got %d", n)
	}
}

func TestSetTuningAppliesNextRound(t *testing.T) {
	s := startedSession(t, nil)
	next := quietTuning(t)
	next.Player.Health = 250
	if err := s.SetTuning(next); err != nil {
		t.Fatal(err)
	}
	if p, _, _ := s.Player(); p.MaxHealth != 100 {
		t.Fatalf("running round changed: %v", p.MaxHealth)
	}

	if err := s.Quit(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if p, _, _ := s.Player(); p.MaxHealth != 250 {
		t.Fatalf("expected new tuning, got %v", p.MaxHealth)
	}

	bad := quietTuning(t)
	bad.Waves.List = nil
	if err := s.SetTuning(bad); !errors.Is(err, prefabs.ErrNoWaves) {
		t.Fatalf("expected ErrNoWaves, got %v", err)
	}
}

func near(a, b, tol float64) bool {
	d := a - b
	return d <= tol && d >= -tol
}
