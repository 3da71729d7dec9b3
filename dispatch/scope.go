package dispatch

import (
	"fmt"
	"sync"
)

// Scope holds at most one family per name.
type Scope struct {
	opts []Option

	mu       sync.RWMutex
	families map[string]*Family
}

// NewScope creates an empty scope. opts are applied to every family it declares.
func NewScope(opts ...Option) *Scope {
	return &Scope{
		opts:     opts,
		families: make(map[string]*Family),
	}
}

// Declare creates a family under name, replacing any family previously
// declared under the same name.
func (s *Scope) Declare(name string) (*Family, error) {
	f, err := Declare(name, s.opts...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.families[name]; exists {
		f.logger.Debug("Replacing previously declared family.")
	}
	s.families[name] = f
	return f, nil
}

// Lookup returns the family declared under name.
func (s *Scope) Lookup(name string) (*Family, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.families[name]
	return f, ok
}

// Call invokes the family declared under name.
func (s *Scope) Call(name string, args ...any) (any, error) {
	f, ok := s.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	return f.Call(args...)
}
