// Package records keeps the best run on disk through gdata. A Store opened
// without a gdata manager works in memory only.
package records

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "pizzasurvivor"

	recordsObject = "records"
	bestProperty  = "best"
)

// Run summarizes one finished round.
type Run struct {
	Survived float64   `yaml:"survived"`
	Level    int       `yaml:"level"`
	Kills    int       `yaml:"kills"`
	Damage   float64   `yaml:"damage"`
	Orbs     int       `yaml:"orbs"`
	Seed     uint64    `yaml:"seed"`
	At       time.Time `yaml:"at"`
}

// Beats reports whether r is better than other: longer survival wins, ties
// go to the higher level.
func (r Run) Beats(other Run) bool {
	if r.Survived != other.Survived {
		return r.Survived > other.Survived
	}
	return r.Level > other.Level
}

func (r Run) String() string {
	total := int(r.Survived)
	return fmt.Sprintf("survived %d:%02d, level %d, %d kills, %.0f damage, %d orbs",
		total/60, total%60, r.Level, r.Kills, r.Damage, r.Orbs)
}

type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	best    *Run
}

// Open connects to the per-user data directory. Failure to open is not
// fatal: the store falls back to memory and the error is logged.
func Open() *Store {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("records: gdata unavailable, records kept in memory: %v", err)
		m = nil
	}
	return NewStore(m)
}

// NewStore wraps m, which may be nil, and loads the saved best run.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m}
	if err := s.load(); err != nil {
		log.Printf("records: load failed, starting fresh: %v", err)
	}
	return s
}

func (s *Store) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(recordsObject, bestProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(recordsObject, bestProperty)
	if err != nil {
		return fmt.Errorf("records: load best: %w", err)
	}
	var run Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return fmt.Errorf("records: unmarshal best: %w", err)
	}
	s.best = &run
	return nil
}

// Best returns the best run so far.
func (s *Store) Best() (Run, bool) {
	if s == nil {
		return Run{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.best == nil {
		return Run{}, false
	}
	return *s.best, true
}

// Submit records run and reports whether it became the new best. The
// in-memory best is updated even when saving fails.
func (s *Store) Submit(run Run) (bool, error) {
	if s == nil {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.best != nil && !run.Beats(*s.best) {
		return false, nil
	}
	s.best = &run

	if s.manager == nil {
		return true, nil
	}
	data, err := yaml.Marshal(run)
	if err != nil {
		return true, fmt.Errorf("records: marshal best: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordsObject, bestProperty, data); err != nil {
		return true, fmt.Errorf("records: save best: %w", err)
	}
	log.Printf("records: new best saved: %s", run)
	return true, nil
}

// Persistent reports whether records survive a restart.
func (s *Store) Persistent() bool {
	return s != nil && s.manager != nil
}
