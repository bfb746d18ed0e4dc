package score

import (
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/sg/internal/application/sim"
)

const (
	scoreObject   = "scores"
	scoreProperty = "best"
)

// BestScores is the persisted score table: the all-time best plus the
// best reached per stage.
type BestScores struct {
	Best      int         `yaml:"best"`
	Stages    map[int]int `yaml:"stages"`
	UpdatedAt string      `yaml:"updatedAt"`
}

// Store tracks the session score against the persisted bests. A nil
// storage manager degrades to memory-only operation: reads and updates
// work, persistence is silently skipped.
type Store struct {
	manager *gdata.Manager
	scores  BestScores
}

// Open creates a store backed by platform-local storage under appName.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open score storage: %w", err)
	}
	return NewStore(manager), nil
}

// NewStore creates a store over an existing storage manager, loading any
// previously saved table. manager may be nil.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{
		manager: manager,
		scores:  BestScores{Stages: map[int]int{}},
	}
	// A missing or unreadable table is not fatal; start fresh
	_ = s.Load()
	return s
}

// Load reads the persisted score table.
func (s *Store) Load() error {
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}

	var loaded BestScores
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	if loaded.Stages == nil {
		loaded.Stages = map[int]int{}
	}
	s.scores = loaded
	return nil
}

// Save writes the score table. A nil manager is a no-op.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	s.scores.UpdatedAt = time.Now().Format(time.RFC3339)
	data, err := yaml.Marshal(&s.scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// Record offers a finished-session score for stage. It returns true when
// the score set a new all-time best.
func (s *Store) Record(stage, score int) bool {
	if score > s.scores.Stages[stage] {
		s.scores.Stages[stage] = score
	}
	if score > s.scores.Best {
		s.scores.Best = score
		return true
	}
	return false
}

// Best returns the all-time best score.
func (s *Store) Best() int {
	return s.scores.Best
}

// StageBest returns the best score reached on stage, zero if none.
func (s *Store) StageBest(stage int) int {
	return s.scores.Stages[stage]
}

// Sink returns an event sink that shadows the running score so the best
// table stays current even if the session ends without a clean shutdown.
func (s *Store) Sink() sim.EventSink {
	return func(events []sim.Event) {
		for _, ev := range events {
			if ev.Kind == sim.EventScoreChanged {
				s.Record(ev.Stage, ev.Score)
			}
		}
	}
}
