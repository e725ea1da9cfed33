package window

import (
	"fmt"
	"slices"
	"sync"

	"github.com/amiigood/folio/internal/logging"
	"github.com/amiigood/folio/internal/pubsub"
	"github.com/amiigood/folio/internal/resource"
)

// Store holds the state of every window. Mutations are only made via Open,
// Close, and Focus, each of which publishes an event to subscribers.
type Store struct {
	states map[ID]*State
	mu     sync.RWMutex

	*pubsub.Broker[State]
	logger logging.Interface
}

// NewStore constructs a store with every window closed and at the base
// z-index.
func NewStore(logger logging.Interface) *Store {
	s := &Store{
		states: make(map[ID]*State, len(IDs)),
		Broker: pubsub.NewBroker[State](logger),
		logger: logger,
	}
	for _, id := range IDs {
		s.states[id] = &State{ID: id, ZIndex: BaseZIndex}
	}
	return s
}

// Open opens the window, raising it above every other window. If data is
// non-nil it becomes the window's payload. Opening an open window raises it
// and refreshes its payload if one is given.
func (s *Store) Open(id ID, data any) error {
	state, err := s.update(id, func(state *State) {
		state.IsOpen = true
		state.ZIndex = s.maxZIndex() + 1
		if data != nil {
			state.Data = data
		}
	})
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	s.Publish(resource.OpenedEvent, state)
	s.logger.Debug("opened window", "window", id)
	return nil
}

// Close closes the window and discards its payload. Closing a closed window
// is a no-op.
func (s *Store) Close(id ID) error {
	var changed bool
	state, err := s.update(id, func(state *State) {
		if !state.IsOpen {
			return
		}
		state.IsOpen = false
		state.Data = nil
		changed = true
	})
	if err != nil {
		return fmt.Errorf("closing window: %w", err)
	}
	if changed {
		s.Publish(resource.ClosedEvent, state)
		s.logger.Debug("closed window", "window", id)
	}
	return nil
}

// Focus raises an open window above every other window. Focusing a closed
// window is a no-op.
func (s *Store) Focus(id ID) error {
	var changed bool
	state, err := s.update(id, func(state *State) {
		if !state.IsOpen {
			return
		}
		state.ZIndex = s.maxZIndex() + 1
		changed = true
	})
	if err != nil {
		return fmt.Errorf("focusing window: %w", err)
	}
	if changed {
		s.Publish(resource.FocusedEvent, state)
		s.logger.Debug("focused window", "window", id)
	}
	return nil
}

// Get retrieves a snapshot of the window's state.
func (s *Store) Get(id ID) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[id]
	if !ok {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownWindow, id)
	}
	return *state, nil
}

// List retrieves a snapshot of every window's state, ordered from bottom to
// top.
func (s *Store) List() []State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]State, 0, len(s.states))
	for _, state := range s.states {
		states = append(states, *state)
	}
	slices.SortFunc(states, func(a, b State) int {
		if a.ZIndex != b.ZIndex {
			return a.ZIndex - b.ZIndex
		}
		return a.ID.order() - b.ID.order()
	})
	return states
}

// Top retrieves the topmost open window. False is returned if no window is
// open.
func (s *Store) Top() (State, bool) {
	states := s.List()
	for i := len(states) - 1; i >= 0; i-- {
		if states[i].IsOpen {
			return states[i], true
		}
	}
	return State{}, false
}

// update applies fn to the window's state whilst holding the lock, returning
// a snapshot of the resulting state.
func (s *Store) update(id ID, fn func(*State)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[id]
	if !ok {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownWindow, id)
	}
	fn(state)
	return *state, nil
}

// maxZIndex returns the highest z-index. The caller must hold the lock.
func (s *Store) maxZIndex() int {
	highest := BaseZIndex
	for _, state := range s.states {
		highest = max(highest, state.ZIndex)
	}
	return highest
}
