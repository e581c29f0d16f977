package theme

import "sync"

// Service tracks the process-wide dark-mode preference and notifies
// subscribers whenever it changes.
type Service struct {
	mu        sync.Mutex
	darkMode  bool
	nextID    int
	listeners map[int]func(bool)
}

// NewService creates a notifier starting in light mode.
func NewService() *Service {
	return &Service{listeners: make(map[int]func(bool))}
}

// DarkMode reports the current preference.
func (s *Service) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// Toggle flips the preference, notifies subscribers, and returns the new
// value.
func (s *Service) Toggle() bool {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	value := s.darkMode
	listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, value)
	return value
}

// Set applies the preference. Subscribers are notified only on an actual
// change.
func (s *Service) Set(dark bool) {
	s.mu.Lock()
	if s.darkMode == dark {
		s.mu.Unlock()
		return
	}
	s.darkMode = dark
	listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, dark)
}

// Subscribe registers a change callback and returns an unsubscribe func.
func (s *Service) Subscribe(fn func(bool)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// snapshotLocked copies the listener set so callbacks run outside the lock.
func (s *Service) snapshotLocked() []func(bool) {
	listeners := make([]func(bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	return listeners
}

func notify(listeners []func(bool), value bool) {
	for _, fn := range listeners {
		fn(value)
	}
}
