package builder

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-formboard/pkg/schema"
	"github.com/goliatone/go-formboard/pkg/storage"
)

// Store owns the builder state and funnels every mutation through Apply.
// On startup the template set is loaded from the repository (empty when
// absent); after each state-changing action the full set is written back.
type Store struct {
	mu    sync.Mutex
	repo  *storage.TemplateRepository
	state State
}

// NewStore loads the persisted template set and returns a ready store.
func NewStore(repo *storage.TemplateRepository) *Store {
	return &Store{
		repo:  repo,
		state: State{Templates: repo.Load()},
	}
}

// State returns a snapshot of the current state. Templates follow the
// copy-on-write discipline, so the snapshot stays stable across later
// applies.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Templates = append([]schema.Template(nil), s.state.Templates...)
	return snapshot
}

// Apply reduces the action against the current state and, when the
// template set changed, persists it before the new state becomes visible.
// Failed actions leave both state and storage untouched.
func (s *Store) Apply(action Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, dirty, err := action.reduce(s.state)
	if err != nil {
		return s.state, err
	}
	if dirty {
		if err := s.repo.Save(next.Templates); err != nil {
			return s.state, fmt.Errorf("builder: persist templates: %w", err)
		}
	}
	s.state = next
	return next, nil
}
