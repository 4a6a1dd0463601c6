package system

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

const enemyScriptDispatch = `
update(__engine, __state)
`

// EnemyScriptSystem runs tengo behaviour scripts attached to enemies. A
// script defines update(engine, state); engine exposes the enemy and player
// positions, the round clock, a random source and set_speed_scale. Scripts
// are compiled once per path and cloned per enemy. A script that fails is
// logged and disabled for that enemy.
type EnemyScriptSystem struct {
	rng      *rand.Rand
	elapsed  float64
	mu       sync.Mutex
	programs map[string]*tengo.Compiled
	failed   map[string]error
	warn     missingWarner
}

func NewEnemyScriptSystem(rng *rand.Rand) *EnemyScriptSystem {
	return &EnemyScriptSystem{
		rng:      rng,
		programs: make(map[string]*tengo.Compiled),
		failed:   make(map[string]error),
	}
}

// Invalidate drops cached programs so edited scripts are recompiled for
// enemies spawned afterwards.
func (s *EnemyScriptSystem) Invalidate() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = make(map[string]*tengo.Compiled)
	s.failed = make(map[string]error)
}

func (s *EnemyScriptSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	s.elapsed += dt
	if ecs.Count(w, component.EnemyScriptComponent.Kind()) == 0 {
		return
	}
	_, _, pt, ok := playerEntity(w, &s.warn, "enemy script")
	if !ok {
		return
	}

	ecs.ForEach3(w, component.EnemyScriptComponent.Kind(), component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sc *component.EnemyScript, enemy *component.Enemy, t *component.Transform) {
		if sc.Disabled {
			return
		}
		if sc.Compiled == nil {
			prog, err := s.program(sc.Path)
			if err != nil {
				log.Printf("enemy script: entity=%s %s: %v", e, sc.Path, err)
				sc.Disabled = true
				return
			}
			sc.Compiled = prog.Clone()
		}
		if sc.State == nil {
			sc.State = &tengo.Map{Value: map[string]tengo.Object{}}
		}

		engine := s.engine(enemy, t, pt)
		if err := runEnemyScript(sc, engine); err != nil {
			log.Printf("enemy script: entity=%s %s update: %v", e, sc.Path, err)
			sc.Disabled = true
		}
	})
}

func (s *EnemyScriptSystem) program(path string) (*tengo.Compiled, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failed[path]; ok {
		return nil, err
	}
	if prog, ok := s.programs[path]; ok {
		return prog, nil
	}
	prog, err := compileEnemyScript(path)
	if err != nil {
		s.failed[path] = err
		return nil, err
	}
	s.programs[path] = prog
	return prog, nil
}

func compileEnemyScript(path string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	script := tengo.NewScript(append(append([]byte(nil), src...), []byte("\n"+enemyScriptDispatch)...))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

func runEnemyScript(sc *component.EnemyScript, engine *tengo.ImmutableMap) error {
	if err := sc.Compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := sc.Compiled.Set("__state", sc.State); err != nil {
		return err
	}
	return sc.Compiled.Run()
}

func (s *EnemyScriptSystem) engine(enemy *component.Enemy, t, player *component.Transform) *tengo.ImmutableMap {
	vec := func(x, y float64) tengo.Object {
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"x": &tengo.Float{Value: x},
			"y": &tengo.Float{Value: y},
		}}
	}
	values := map[string]tengo.Object{}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vec(t.X, t.Y), nil
	}}
	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vec(player.X, player.Y), nil
	}}
	values["elapsed"] = &tengo.UserFunction{Name: "elapsed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: s.elapsed}, nil
	}}
	values["random"] = &tengo.UserFunction{Name: "random", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if s.rng == nil {
			return &tengo.Float{Value: 0.5}, nil
		}
		return &tengo.Float{Value: s.rng.Float64()}, nil
	}}
	values["set_speed_scale"] = &tengo.UserFunction{Name: "set_speed_scale", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		f, ok := objectAsFloat(args[0])
		if !ok || f < 0 {
			return tengo.FalseValue, nil
		}
		enemy.SpeedScale = f
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsFloat(o tengo.Object) (float64, bool) {
	switch v := o.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	}
	return 0, false
}
