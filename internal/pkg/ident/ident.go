package ident

import "github.com/google/uuid"

// Generator abstracts id creation so the registration engine stays
// deterministic under test.
type Generator interface {
	NewID() uuid.UUID
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}
