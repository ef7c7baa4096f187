package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for unknown or expired cart ids.
	ErrNotFound = errors.New("cart: not found")
)

// DefaultTTL is how long an untouched cart survives. A visitor who walks away
// mid-selection loses nothing important — the catalog is a click away.
const DefaultTTL = 24 * time.Hour

// Store keeps carts in memory, keyed by an opaque id. All methods are safe
// for concurrent use. Expired carts are dropped lazily on access and in bulk
// by Sweep.
type Store struct {
	mu  sync.Mutex
	ttl time.Duration

	carts map[string]*entry
}

type entry struct {
	cart    *Cart
	touched time.Time
}

// NewStore creates a Store with the given TTL. A zero ttl means DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:   ttl,
		carts: make(map[string]*entry),
	}
}

// Create allocates an empty cart and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[id] = &entry{cart: &Cart{}, touched: time.Now()}
	return id
}

// Get returns a snapshot of the cart's line items.
func (s *Store) Get(id string) ([]LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.live(id)
	if err != nil {
		return nil, err
	}
	return e.cart.Items(), nil
}

// Update runs fn against the cart under the store lock. fn receives the Cart
// itself, so all four mutation operations are available to callers without
// the store growing a method per operation.
func (s *Store) Update(id string, fn func(*Cart) error) ([]LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.live(id)
	if err != nil {
		return nil, err
	}
	if err := fn(e.cart); err != nil {
		return nil, err
	}
	e.touched = time.Now()
	return e.cart.Items(), nil
}

// Delete drops the cart entirely. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}

// Sweep removes every cart untouched for longer than the TTL and returns how
// many were dropped. Called periodically from main.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, e := range s.carts {
		if now.Sub(e.touched) > s.ttl {
			delete(s.carts, id)
			n++
		}
	}
	return n
}

// live returns the entry for id, expiring it on the spot if it is stale.
// Caller must hold s.mu.
func (s *Store) live(id string) (*entry, error) {
	e, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Since(e.touched) > s.ttl {
		delete(s.carts, id)
		return nil, ErrNotFound
	}
	return e, nil
}
