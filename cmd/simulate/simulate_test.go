package main

import (
	"testing"

	"github.com/milk9111/pizzasurvivor/prefabs"
)

func TestSimulate(t *testing.T) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		bot  string
	}{
		{"idle", "idle"},
		{"circle", "circle"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := simulate(Options{Tuning: tuning, Seed: 7, Seconds: 5, Bot: c.bot})
			if err != nil {
				t.Fatal(err)
			}
			if res.Survived <= 0 || res.Survived > 5.01 {
				t.Fatalf("expected up to 5s of play, got %v", res.Survived)
			}
			if res.Level < 1 {
				t.Fatalf("expected a level of at least 1, got %d", res.Level)
			}
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatal(err)
	}
	a, err := simulate(Options{Tuning: tuning, Seed: 3, Seconds: 20, Bot: "circle"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := simulate(Options{Tuning: tuning, Seed: 3, Seconds: 20, Bot: "circle"})
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatalf("same seed gave different runs:\n%s\n%s", a, b)
	}
}

func TestUnknownBot(t *testing.T) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := simulate(Options{Tuning: tuning, Seed: 1, Seconds: 1, Bot: "sprint"}); err == nil {
		t.Fatal("expected an error for an unknown bot")
	}
}
