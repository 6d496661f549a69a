package course

import (
	"errors"
	"sort"
)

var (
	ErrEmptyCode      = errors.New("course code is required")
	ErrInvalidCredits = errors.New("credit hours cannot be negative")
)

// Course is catalog data: prerequisites are a set of course codes, checked by
// existence, never by sequence.
type Course struct {
	code          string
	title         string
	creditHours   int32
	prerequisites map[string]struct{}
	description   string
}

func New(code, title string, creditHours int32, prerequisites []string, description string) (*Course, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if creditHours < 0 {
		return nil, ErrInvalidCredits
	}
	prereqs := make(map[string]struct{}, len(prerequisites))
	for _, p := range prerequisites {
		if p == "" || p == code {
			continue
		}
		prereqs[p] = struct{}{}
	}
	return &Course{
		code:          code,
		title:         title,
		creditHours:   creditHours,
		prerequisites: prereqs,
		description:   description,
	}, nil
}

func (c *Course) Code() string        { return c.code }
func (c *Course) Title() string       { return c.title }
func (c *Course) CreditHours() int32  { return c.creditHours }
func (c *Course) Description() string { return c.description }

func (c *Course) HasPrerequisites() bool {
	return len(c.prerequisites) > 0
}

func (c *Course) RequiresCourse(code string) bool {
	_, ok := c.prerequisites[code]
	return ok
}

func (c *Course) Prerequisites() []string {
	codes := make([]string, 0, len(c.prerequisites))
	for p := range c.prerequisites {
		codes = append(codes, p)
	}
	sort.Strings(codes)
	return codes
}
