package kernel

import (
	"sync"

	"github.com/vitakit/sysmodule/catalog"
)

// Event types for module lifecycle notifications.
type EventType uint8

const (
	EventLoaded EventType = iota
	EventReset
)

// Event represents a module lifecycle event.
type Event struct {
	Module catalog.ModuleID
	Type   EventType
}

// Observer receives notifications about module lifecycle events.
type Observer interface {
	OnModuleEvent(Event)
}

// LoadedModules is the set of system modules loaded in the current
// session. It grows as modules load and empties on session reset.
//
// The set owns its synchronization: queries and mutation may come from
// any goroutine. The kernel's module-loading critical section is still
// expected to serialize load attempts per module.
type LoadedModules struct {
	mu        sync.RWMutex
	index     map[catalog.ModuleID]struct{}
	order     []catalog.ModuleID
	observers []Observer
	obsMu     sync.RWMutex
}

// NewLoadedModules creates an empty session set.
func NewLoadedModules() *LoadedModules {
	return &LoadedModules{
		index: make(map[catalog.ModuleID]struct{}),
	}
}

// Contains reports whether the module has been loaded this session.
// Unknown modules are simply not loaded.
func (s *LoadedModules) Contains(id catalog.ModuleID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// Record marks a module as loaded and reports whether it was newly
// recorded. Recording an already-loaded module is a no-op.
func (s *LoadedModules) Record(id catalog.ModuleID) bool {
	s.mu.Lock()
	if _, ok := s.index[id]; ok {
		s.mu.Unlock()
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.notify(Event{Module: id, Type: EventLoaded})
	return true
}

// Reset empties the set at session teardown.
func (s *LoadedModules) Reset() {
	s.mu.Lock()
	cleared := s.order
	s.index = make(map[catalog.ModuleID]struct{})
	s.order = nil
	s.mu.Unlock()

	for _, id := range cleared {
		s.notify(Event{Module: id, Type: EventReset})
	}
}

// Len returns the number of loaded modules.
func (s *LoadedModules) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// All returns the loaded modules in load order.
func (s *LoadedModules) All() []catalog.ModuleID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.ModuleID, len(s.order))
	copy(out, s.order)
	return out
}

// Subscribe adds an observer for lifecycle events.
func (s *LoadedModules) Subscribe(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, o)
}

// Unsubscribe removes an observer.
func (s *LoadedModules) Unsubscribe(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	for i, obs := range s.observers {
		if obs == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *LoadedModules) notify(e Event) {
	s.obsMu.RLock()
	defer s.obsMu.RUnlock()
	for _, o := range s.observers {
		o.OnModuleEvent(e)
	}
}
