// Package session runs one round of play: it owns the world, the systems,
// the random source and the phase machine that moves between menu,
// gameplay, level-up and game over.
package session

import (
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
	"github.com/milk9111/pizzasurvivor/ecs/system"
	"github.com/milk9111/pizzasurvivor/prefabs"
	"github.com/milk9111/pizzasurvivor/records"
)

// Recorder receives every finished run. records.Store satisfies it.
type Recorder interface {
	Submit(run records.Run) (bool, error)
}

type Config struct {
	Tuning *prefabs.Tuning
	// Seed fixes the random source. Zero picks a seed from the clock.
	Seed     uint64
	Input    system.InputSource
	Recorder Recorder
}

// Stats accumulates over one round.
type Stats struct {
	Elapsed float64
	Kills   int
	Damage  float64
	Orbs    int
	Level   int
}

type Session struct {
	phase Phase

	tuning  *prefabs.Tuning
	pending *prefabs.Tuning
	seed    uint64
	rng     *rand.Rand

	world    *ecs.World
	gameplay *ecs.Scheduler
	levelUp  *ecs.Scheduler
	physics  *system.PhysicsSystem
	scripts  *system.EnemyScriptSystem
	input    *system.InputSystem

	recorder Recorder
	offer    []system.Upgrade
	stats    Stats
	lastRun  records.Run
	improved bool
}

func New(cfg Config) (*Session, error) {
	if cfg.Tuning == nil {
		return nil, fmt.Errorf("session: tuning is required")
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Session{
		phase:    PhaseMainMenu,
		tuning:   cfg.Tuning.Clone(),
		seed:     seed,
		rng:      rng,
		world:    ecs.NewWorld(),
		physics:  system.NewPhysicsSystem(),
		scripts:  system.NewEnemyScriptSystem(rng),
		input:    system.NewInputSystem(cfg.Input),
		recorder: cfg.Recorder,
	}, nil
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Tuning() *prefabs.Tuning {
	return s.tuning
}

func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) Seed() uint64 {
	return s.seed
}

// LastRun is the summary saved when the most recent round ended, and
// whether it set a new best.
func (s *Session) LastRun() (records.Run, bool) {
	return s.lastRun, s.improved
}

// SetTuning stages t for the next round. The running round keeps its own
// copy.
func (s *Session) SetTuning(t *prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.pending = t.Clone()
	return nil
}

// InvalidateScripts drops compiled enemy scripts so edits take effect for
// enemies spawned from now on.
func (s *Session) InvalidateScripts() {
	s.scripts.Invalidate()
}

// Player returns a copy of the player's stats, if a round is live.
func (s *Session) Player() (component.Player, cp.Vector, bool) {
	pe, ok := ecs.First(s.world, component.PlayerTagComponent.Kind())
	if !ok {
		return component.Player{}, cp.Vector{}, false
	}
	p, okP := ecs.Get(s.world, pe, component.PlayerComponent.Kind())
	t, okT := ecs.Get(s.world, pe, component.TransformComponent.Kind())
	if !okP || !okT {
		return component.Player{}, cp.Vector{}, false
	}
	return *p, cp.Vector{X: t.X, Y: t.Y}, true
}

// Wave reports the current wave index and its multiplier.
func (s *Session) Wave() (int, float64) {
	me, ok := ecs.First(s.world, component.WaveManagerComponent.Kind())
	if !ok {
		return 0, 1
	}
	m, _ := ecs.Get(s.world, me, component.WaveManagerComponent.Kind())
	return m.CurrentWave(), m.Multiplier()
}

// Start begins a new round from the main menu or the game-over screen.
func (s *Session) Start() error {
	return s.Transition(PhaseStartingLoop)
}

// Quit abandons the round and returns to the main menu.
func (s *Session) Quit() error {
	if s.phase == PhaseMainMenu {
		return nil
	}
	return s.Transition(PhaseMainMenu)
}

// Transition moves to phase to, running the exit hook of the current phase
// and the enter hook of the next.
func (s *Session) Transition(to Phase) error {
	from := s.phase
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	s.exit(from)
	s.phase = to
	log.Printf("session: %s -> %s", from, to)
	return s.enter(to)
}

func (s *Session) exit(p Phase) {
	switch p {
	case PhaseLevelUp:
		s.despawnParticles()
		s.offer = nil
	case PhaseGameOver:
		s.teardown()
	}
}

func (s *Session) enter(p Phase) error {
	switch p {
	case PhaseMainMenu:
		s.teardown()
	case PhaseStartingLoop:
		s.teardown()
		if err := s.buildRound(); err != nil {
			s.teardown()
			s.phase = PhaseMainMenu
			return fmt.Errorf("session: start round: %w", err)
		}
		return s.Transition(PhaseGameplay)
	case PhaseLevelUp:
		s.offer = system.DrawUpgrades(s.rng, s.tuning.Upgrades.Choices)
		s.spawnParticles()
	case PhaseGameOver:
		s.saveRun()
	}
	return nil
}

// Offer returns the upgrades on the table while in the level-up phase.
func (s *Session) Offer() ([]system.Upgrade, error) {
	if s.phase != PhaseLevelUp || len(s.offer) == 0 {
		return nil, ErrNoOffer
	}
	return slices.Clone(s.offer), nil
}

// Select applies one of the offered upgrades and resumes play.
func (s *Session) Select(u system.Upgrade) error {
	if s.phase != PhaseLevelUp || len(s.offer) == 0 {
		return ErrNoOffer
	}
	if !slices.Contains(s.offer, u) {
		return fmt.Errorf("%w: %s", ErrNotOffered, u)
	}
	affected, err := system.ApplyUpgrade(s.world, u, s.tuning)
	if err != nil {
		return fmt.Errorf("session: apply %s: %w", u, err)
	}
	log.Printf("session: applied %s to %d entities", u, len(affected))
	return s.Transition(PhaseGameplay)
}

// Update advances the round by dt seconds. Only the gameplay and level-up
// phases do any work.
func (s *Session) Update(dt float64) {
	switch s.phase {
	case PhaseGameplay:
		s.stats.Elapsed += dt
		s.gameplay.Update(s.world, dt)
		s.handleEvents()
	case PhaseLevelUp:
		s.levelUp.Update(s.world, dt)
	}
}

// handleEvents folds this frame's events into the stats and reacts to
// level-ups and death. Death wins when both happen in one frame.
func (s *Session) handleEvents() {
	leveled, died := false, false
	for _, ev := range s.world.Events().Drain() {
		switch ev.Type {
		case ecs.EventEnemyKilled:
			s.stats.Kills++
		case ecs.EventDamageDealt:
			s.stats.Damage += ev.Amount
		case ecs.EventOrbCollected:
			s.stats.Orbs++
		case ecs.EventLevelUp:
			s.stats.Level = int(ev.Amount)
			leveled = true
		case ecs.EventPlayerDied:
			died = true
		}
	}

	var err error
	switch {
	case died:
		err = s.Transition(PhaseGameOver)
	case leveled:
		err = s.Transition(PhaseLevelUp)
	}
	if err != nil {
		log.Printf("session: %v", err)
	}
}

func (s *Session) buildRound() error {
	if s.pending != nil {
		s.tuning = s.pending
		s.pending = nil
	}
	t := s.tuning
	w := s.world

	if _, err := entity.NewPlayer(w, t.Player); err != nil {
		return err
	}
	if _, err := entity.NewCamera(w, t.Camera); err != nil {
		return err
	}
	if _, err := entity.NewBackground(w, t.Background); err != nil {
		return err
	}
	if _, err := entity.NewWaveManager(w, t.Waves); err != nil {
		return err
	}
	if _, err := system.ApplyUpgrade(w, system.UpgradeWhip, t); err != nil {
		return err
	}

	s.stats = Stats{Level: 1}
	s.lastRun, s.improved = records.Run{}, false
	s.scripts = system.NewEnemyScriptSystem(s.rng)
	s.gameplay = s.newGameplayScheduler()
	s.levelUp = ecs.NewScheduler(
		system.NewFallSystem(),
		system.NewTwoFrameAnimationSystem(),
	)
	return nil
}

func (s *Session) newGameplayScheduler() *ecs.Scheduler {
	t := s.tuning
	hits := system.NewHitReporter(t.DamageNumbers, t.Enemy)
	return ecs.NewScheduler(
		s.input,
		system.NewPlayerMovementSystem(),
		s.scripts,
		system.NewEnemyMovementSystem(),
		system.NewWhipFacingSystem(t.Whip),
		system.NewAttachmentSystem(),
		system.NewCameraSystem(),
		s.physics,
		system.NewWhipAttackSystem(t.Whip, hits),
		system.NewCloseShotSystem(t.CloseShot),
		system.NewCloseShotBulletSystem(hits),
		system.NewAreaShotSystem(t.AreaShot, s.rng),
		system.NewAreaShotBulletSystem(hits),
		system.NewEnemyContactDamageSystem(),
		system.NewOrbPickupStartSystem(),
		system.NewOrbAttractSystem(),
		system.NewExpGainSystem(t.Orb.CollectDistance),
		system.NewEnemyDeathSystem(t.Enemy, t.Orb, s.rng),
		system.NewEnemyDespawnSystem(t.Enemy),
		system.NewWaveSystem(t.Enemy, s.rng),
		system.NewHitFlashSystem(),
		system.NewDamageNumberSystem(),
		system.NewTTLSystem(),
		system.NewLevelSystem(t.Player.LevelGrowth),
		system.NewGameOverSystem(),
	)
}

// teardown destroys every round-scoped entity and empties the physics
// space.
func (s *Session) teardown() {
	for _, e := range s.world.Query(component.GameplayEntityComponent.Kind()) {
		ecs.DestroyEntity(s.world, e)
	}
	s.despawnParticles()
	s.world.Events().Clear()
	s.physics.Reset()
	s.offer = nil
}

func (s *Session) spawnParticles() {
	var camera cp.Vector
	if ce, ok := ecs.First(s.world, component.CameraTagComponent.Kind(), component.TransformComponent.Kind()); ok {
		t, _ := ecs.Get(s.world, ce, component.TransformComponent.Kind())
		camera = cp.Vector{X: t.X, Y: t.Y}
	}
	if _, err := entity.NewLevelUpParticles(s.world, s.tuning.LevelUp, s.rng, camera); err != nil {
		log.Printf("session: level-up particles: %v", err)
	}
}

func (s *Session) despawnParticles() {
	for _, e := range s.world.Query(component.LevelUpParticleComponent.Kind()) {
		ecs.DestroyEntity(s.world, e)
	}
}

func (s *Session) saveRun() {
	level := s.stats.Level
	if p, _, ok := s.Player(); ok {
		level = p.Level
	}
	s.lastRun = records.Run{
		Survived: s.stats.Elapsed,
		Level:    level,
		Kills:    s.stats.Kills,
		Damage:   s.stats.Damage,
		Orbs:     s.stats.Orbs,
		Seed:     s.seed,
		At:       time.Now().UTC(),
	}
	if s.recorder == nil {
		return
	}
	improved, err := s.recorder.Submit(s.lastRun)
	if err != nil {
		log.Printf("session: save run: %v", err)
	}
	s.improved = improved
}

// Summary is a one-line description of the last finished run.
func (s *Session) Summary() string {
	return fmt.Sprintf("Pizza Survivor: %s (seed %d)", s.lastRun, s.lastRun.Seed)
}
