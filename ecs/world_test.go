package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/pizzasurvivor/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

// TestForEachIntersections checks that the multi-kind iterators visit only
// live entities carrying every kind.
func TestForEachIntersections(t *testing.T) {
	transform := component.TransformComponent.Kind()
	sprite := component.SpriteComponent.Kind()
	player := component.PlayerComponent.Kind()
	enemy := component.EnemyComponent.Kind()

	type parts struct{ sprite, player, enemy bool }
	cases := []struct {
		name    string
		ents    []parts
		destroy int // -1 = none
		want3   []int
		want4   []int
	}{
		{"intersection", []parts{{true, true, false}, {true, false, true}, {true, true, true}, {false, true, true}}, -1, []int{0, 2}, []int{2}},
		{"ignores_dead_entities", []parts{{true, true, true}}, 0, nil, nil},
		{"no_common", []parts{{true, false, false}, {false, true, false}}, -1, nil, nil},
		{"missing_store", []parts{{false, false, false}}, -1, nil, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			index := make(map[Entity]int, len(c.ents))
			var created []Entity
			for i, p := range c.ents {
				e := CreateEntity(w)
				index[e] = i
				created = append(created, e)
				if err := Add(w, e, transform, &component.Transform{X: float64(i)}); err != nil {
					t.Fatal(err)
				}
				if p.sprite {
					if err := Add(w, e, sprite, &component.Sprite{}); err != nil {
						t.Fatal(err)
					}
				}
				if p.player {
					if err := Add(w, e, player, &component.Player{}); err != nil {
						t.Fatal(err)
					}
				}
				if p.enemy {
					if err := Add(w, e, enemy, &component.Enemy{}); err != nil {
						t.Fatal(err)
					}
				}
			}
			if c.destroy >= 0 && !DestroyEntity(w, created[c.destroy]) {
				t.Fatal("failed to destroy entity")
			}

			got3 := map[int]bool{}
			ForEach3(w, transform, sprite, player, func(e Entity, tr *component.Transform, _ *component.Sprite, _ *component.Player) {
				if tr.X != float64(index[e]) {
					t.Fatalf("entity %s got the wrong transform", e)
				}
				got3[index[e]] = true
			})
			got4 := map[int]bool{}
			ForEach4(w, transform, sprite, player, enemy, func(e Entity, _ *component.Transform, _ *component.Sprite, _ *component.Player, _ *component.Enemy) {
				got4[index[e]] = true
			})

			for _, check := range []struct {
				label string
				got   map[int]bool
				want  []int
			}{{"ForEach3", got3, c.want3}, {"ForEach4", got4, c.want4}} {
				if len(check.got) != len(check.want) {
					t.Fatalf("%s: expected %v, got %v", check.label, check.want, check.got)
				}
				for _, i := range check.want {
					if !check.got[i] {
						t.Fatalf("%s: expected entity %d in %v", check.label, i, check.got)
					}
				}
			}
		})
	}
}

func TestStaleHandles(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("destroy failed")
	}
	if DestroyEntity(w, old) {
		t.Fatal("second destroy should report false")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot reuse, got %s after %s", reused, old)
	}
	if reused == old || IsAlive(w, old) {
		t.Fatalf("stale handle %s still resolves", old)
	}
	if Has(w, reused, h.Kind()) {
		t.Fatalf("components leaked into the recycled slot")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	cases := []struct {
		name string
		add  func() error
		want error
	}{
		{"nil_component", func() error { return Add[int](w, e, component.NewComponentKind[int](), nil) }, component.ErrNilComponent},
		{"zero_kind", func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }, component.ErrInvalidComponentKind},
		{"dead_entity", func() error { return Add(w, Entity(0), component.NewComponentKind[int](), intPtr(1)) }, component.ErrEntityNotAlive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.add(); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestFirstAndCount(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponentKind[string]()
	other := component.NewComponentKind[int]()

	if _, ok := First(w, tag); ok {
		t.Fatal("expected no entity in an empty world")
	}

	a := CreateEntity(w)
	b := CreateEntity(w)
	if err := Add(w, a, tag, stringPtr("player")); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, b, other, intPtr(1)); err != nil {
		t.Fatal(err)
	}

	got, ok := First(w, tag)
	if !ok || got != a {
		t.Fatalf("expected %s, got %s (%v)", a, got, ok)
	}
	if Count(w, tag) != 1 || Count(w, other) != 1 || w.Count() != 2 {
		t.Fatalf("unexpected counts")
	}
	if _, ok := First(w, tag, other); ok {
		t.Fatal("expected no entity carrying both kinds")
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponentKind[int]()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h, func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 5 || Count(w, h) != 0 || w.Count() != 0 {
		t.Fatalf("expected all 5 visited and removed, visited=%d left=%d", visited, Count(w, h))
	}
}

func TestSchedulerAndEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(
		SystemFunc(func(w *World, dt float64) {
			order = append(order, "first")
			w.Events().Push(Event{Type: EventLevelUp, Amount: dt})
		}),
		SystemFunc(func(w *World, _ float64) { order = append(order, "second") }),
	)
	s.Add(nil)
	s.Update(w, 0.5)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected insertion order, got %v", order)
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("nil system should be ignored")
	}
	events := w.Events().Drain()
	if len(events) != 1 || events[0].Type != EventLevelUp || events[0].Amount != 0.5 {
		t.Fatalf("unexpected events %v", events)
	}
	if w.Events().Len() != 0 {
		t.Fatal("drain should empty the queue")
	}
}
