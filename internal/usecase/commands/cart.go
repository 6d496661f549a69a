package commands

import (
	"context"

	"registrar/internal/domain/cart"
	"registrar/internal/domain/offering"
	"registrar/internal/infra"
	"registrar/internal/pkg/errs"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCartItem = errs.New("offering already in cart")
	ErrCartItemNotFound  = errs.New("offering not in cart")
)

// CartCommands stages offerings ahead of submission. The cart never touches
// seat state; validation reads live counts but mutates nothing.
type CartCommands interface {
	Get(ctx context.Context, studentID uuid.UUID) *cart.Cart
	AddItem(ctx context.Context, studentID, offeringID uuid.UUID) (*cart.Cart, error)
	RemoveItem(ctx context.Context, studentID, offeringID uuid.UUID) (*cart.Cart, error)
	Clear(ctx context.Context, studentID uuid.UUID)
	Validate(ctx context.Context, studentID uuid.UUID) (cart.ValidationResult, error)
}

type cartCommandsImpl struct {
	carts    shared.CartStore
	registry shared.OfferingRegistry
}

func NewCartCommands(carts shared.CartStore, registry shared.OfferingRegistry) CartCommands {
	return &cartCommandsImpl{carts: carts, registry: registry}
}

func (c *cartCommandsImpl) Get(_ context.Context, studentID uuid.UUID) *cart.Cart {
	if staged, ok := c.carts.Get(studentID); ok {
		return staged
	}
	return cart.New(studentID)
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, studentID, offeringID uuid.UUID) (*cart.Cart, error) {
	// Reject ids the catalog does not know before they reach the cart.
	if _, err := c.registry.Get(ctx, offeringID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}

	staged := c.Get(ctx, studentID)
	if !staged.AddItem(offeringID) {
		return nil, ErrDuplicateCartItem
	}
	c.carts.Put(staged)
	return staged, nil
}

func (c *cartCommandsImpl) RemoveItem(_ context.Context, studentID, offeringID uuid.UUID) (*cart.Cart, error) {
	staged, ok := c.carts.Get(studentID)
	if !ok || !staged.RemoveItem(offeringID) {
		return nil, ErrCartItemNotFound
	}
	c.carts.Put(staged)
	return staged, nil
}

func (c *cartCommandsImpl) Clear(_ context.Context, studentID uuid.UUID) {
	c.carts.Remove(studentID)
}

func (c *cartCommandsImpl) Validate(ctx context.Context, studentID uuid.UUID) (cart.ValidationResult, error) {
	staged := c.Get(ctx, studentID)

	resolved := make([]*offering.Offering, 0, staged.Size())
	for _, id := range staged.Items() {
		off, err := c.registry.Get(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return cart.ValidationResult{}, err
		}
		resolved = append(resolved, off)
	}

	return staged.Validate(resolved), nil
}
