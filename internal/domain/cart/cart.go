package cart

import (
	"fmt"

	"registrar/internal/domain/offering"

	"github.com/google/uuid"
)

// Cart is a student-scoped staging list. Insertion order is preserved and
// meaningful: it is the admission-attempt order at submission.
type Cart struct {
	studentID uuid.UUID
	items     []uuid.UUID
}

func New(studentID uuid.UUID) *Cart {
	return &Cart{studentID: studentID}
}

func Reconstruct(studentID uuid.UUID, items []uuid.UUID) *Cart {
	c := &Cart{studentID: studentID}
	for _, id := range items {
		c.AddItem(id)
	}
	return c
}

// AddItem appends the offering; duplicates are rejected.
func (c *Cart) AddItem(offeringID uuid.UUID) bool {
	for _, id := range c.items {
		if id == offeringID {
			return false
		}
	}
	c.items = append(c.items, offeringID)
	return true
}

func (c *Cart) RemoveItem(offeringID uuid.UUID) bool {
	for i, id := range c.items {
		if id == offeringID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []uuid.UUID {
	items := make([]uuid.UUID, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) StudentID() uuid.UUID { return c.studentID }
func (c *Cart) Size() int            { return len(c.items) }
func (c *Cart) IsEmpty() bool        { return len(c.items) == 0 }

// ValidationResult separates errors from warnings: a full offering is a
// warning (waitlisting is a valid outcome), a schedule conflict is an error.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

func (v ValidationResult) HasErrors() bool   { return len(v.Errors) > 0 }
func (v ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

// Validate checks the cart against the resolved offerings, which must be in
// item order. Each conflicting unordered pair yields one error message.
func (c *Cart) Validate(resolved []*offering.Offering) ValidationResult {
	var result ValidationResult

	if len(c.items) == 0 {
		result.Errors = append(result.Errors, "cart is empty")
		return result
	}

	for i := 0; i < len(resolved); i++ {
		for j := i + 1; j < len(resolved); j++ {
			if resolved[i].Schedule().Overlaps(resolved[j].Schedule()) {
				result.Errors = append(result.Errors, fmt.Sprintf(
					"schedule conflict: %s and %s",
					resolved[i].CourseCode(), resolved[j].CourseCode(),
				))
			}
		}
	}

	for _, off := range resolved {
		if off.AvailableSeats() == 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"offering %s is full - will be waitlisted", off.CourseCode(),
			))
		}
	}

	return result
}
