// Package cartstore keeps staged carts in memory with a TTL. A cart is
// scratch state; an expired cart costs the student a few clicks, never a
// seat.
package cartstore

import (
	"time"

	"registrar/internal/domain/cart"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type CartStore struct {
	cache *gocache.Cache
}

func NewCartStore(ttl time.Duration) shared.CartStore {
	return &CartStore{
		cache: gocache.New(ttl, ttl/2),
	}
}

func (s *CartStore) Get(studentID uuid.UUID) (*cart.Cart, bool) {
	v, ok := s.cache.Get(studentID.String())
	if !ok {
		return nil, false
	}
	c, ok := v.(*cart.Cart)
	return c, ok
}

// Put stores the cart under its owner's id and refreshes the TTL.
func (s *CartStore) Put(c *cart.Cart) {
	s.cache.SetDefault(c.StudentID().String(), c)
}

func (s *CartStore) Remove(studentID uuid.UUID) {
	s.cache.Delete(studentID.String())
}
