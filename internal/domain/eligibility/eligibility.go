// Package eligibility holds the pure checks the registration engine runs
// before touching any offering state, so a rejected attempt never leaves a
// partial capacity mutation behind.
package eligibility

import (
	"registrar/internal/domain/course"
	"registrar/internal/domain/offering"
)

// PrerequisitesSatisfied reports whether every prerequisite of the course is
// in the completed set. A nil course (unknown catalog code) or an empty
// prerequisite set is vacuously satisfied; the catalog lookup policy is
// permissive, not an error.
func PrerequisitesSatisfied(completed map[string]struct{}, c *course.Course) bool {
	return len(MissingPrerequisites(completed, c)) == 0
}

// MissingPrerequisites returns the unmet prerequisite codes, sorted.
func MissingPrerequisites(completed map[string]struct{}, c *course.Course) []string {
	if c == nil {
		return nil
	}
	var missing []string
	for _, code := range c.Prerequisites() {
		if _, ok := completed[code]; !ok {
			missing = append(missing, code)
		}
	}
	return missing
}

// ConflictsWithSchedule reports whether the candidate offering's meeting
// pattern overlaps any of the current offerings. An empty current set never
// conflicts.
func ConflictsWithSchedule(candidate *offering.Offering, current []*offering.Offering) bool {
	for _, enrolled := range current {
		if candidate.Schedule().Overlaps(enrolled.Schedule()) {
			return true
		}
	}
	return false
}
