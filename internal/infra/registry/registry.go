// Package registry keeps the authoritative in-process offering aggregates.
// Seat admission is serialized through these aggregates, so every caller must
// see the same instance for a given offering id.
package registry

import (
	"context"
	"sync"

	"registrar/internal/domain/offering"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
)

// Source rebuilds an offering aggregate from persisted state on a cold hit.
type Source interface {
	Load(ctx context.Context, id uuid.UUID) (*offering.Offering, error)
}

type OfferingRegistry struct {
	mu     sync.RWMutex
	items  map[uuid.UUID]*offering.Offering
	source Source
}

func NewOfferingRegistry(source Source) shared.OfferingRegistry {
	return &OfferingRegistry{
		items:  make(map[uuid.UUID]*offering.Offering),
		source: source,
	}
}

// Get returns the aggregate for the offering, loading it on first use. The
// first loader to insert wins; concurrent cold loads of the same id all end
// up holding the same instance.
func (r *OfferingRegistry) Get(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	r.mu.RLock()
	off, ok := r.items[id]
	r.mu.RUnlock()
	if ok {
		return off, nil
	}

	loaded, err := r.source.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.items[id]; ok {
		return existing, nil
	}
	r.items[id] = loaded
	return loaded, nil
}
