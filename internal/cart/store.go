package cart

import (
	"errors"
	"sync"
)

// ErrStoreClosed is returned by every Store operation after Close. The
// HTTP layer maps it to a server fault, distinct from not-found.
var ErrStoreClosed = errors.New("cart store is closed")

// Store is the process-wide registry of carts. Carts are ephemeral
// session state: nothing is persisted and a restart loses them all,
// which is intentional.
//
// One mutex guards the whole map. Cart counts and per-operation cost are
// small, so store-wide serialization is simpler than per-entry locking
// and fast enough. Callers must not hold more than one logical cart
// operation per call; WithCart exists so a read-modify-write happens in
// a single critical section instead of get-then-save.
type Store struct {
	mu     sync.Mutex
	carts  map[string]*Cart
	closed bool
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// CreateCart makes a new empty cart, registers it, and returns its id.
func (s *Store) CreateCart() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrStoreClosed
	}

	c := New()
	s.carts[c.ID] = c
	return c.ID, nil
}

// GetCart returns a snapshot copy of the cart, or nil if the id is
// unknown. The copy never aliases store state, so the caller may read it
// after the lock is released.
func (s *Store) GetCart(cartID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	c, ok := s.carts[cartID]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// WithCart runs fn on the live cart while holding the store lock, then
// returns a snapshot of the mutated cart. Returns nil if the id is
// unknown. fn must not call back into the store and must not retain the
// *Cart it is given.
func (s *Store) WithCart(cartID string, fn func(*Cart)) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	c, ok := s.carts[cartID]
	if !ok {
		return nil, nil
	}
	fn(c)
	return c.Clone(), nil
}

// SaveCart upserts a cart under its own id, replacing any prior entry.
// Used by restoration flows; the store keeps its own copy.
func (s *Store) SaveCart(c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	s.carts[c.ID] = c.Clone()
	return nil
}

// DeleteCart removes the cart and reports whether it existed.
func (s *Store) DeleteCart(cartID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, ErrStoreClosed
	}

	_, ok := s.carts[cartID]
	delete(s.carts, cartID)
	return ok, nil
}

// Close drops all carts and fails every later operation with
// ErrStoreClosed. Called during shutdown.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.carts = nil
}
