// Package filter holds in-progress filter edits that have not been applied
// to a query yet.
package filter

import (
	"slices"
	"sync"
)

// Staged is a copy of the staged selection
type Staged struct {
	EmploymentTypes []string `json:"employmentTypes"`
	Salary          string   `json:"salary"`
}

// Staging is the mutable working copy of the filter panel. It never
// triggers a fetch.
type Staging struct {
	mu              sync.Mutex
	employmentTypes []string
	salary          string
}

func NewStaging() *Staging {
	return &Staging{}
}

// ToggleEmploymentType adds or removes id. Adding an id that is already
// staged keeps its original position.
func (s *Staging) ToggleEmploymentType(id string, included bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.employmentTypes, id)
	switch {
	case included && idx < 0:
		s.employmentTypes = append(s.employmentTypes, id)
	case !included && idx >= 0:
		s.employmentTypes = slices.Delete(s.employmentTypes, idx, idx+1)
	}
}

// SetSalaryRange replaces the single staged salary range
func (s *Staging) SetSalaryRange(id string) {
	s.mu.Lock()
	s.salary = id
	s.mu.Unlock()
}

// Reset clears every staged selection
func (s *Staging) Reset() {
	s.mu.Lock()
	s.employmentTypes = nil
	s.salary = ""
	s.mu.Unlock()
}

func (s *Staging) Snapshot() Staged {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Staged{
		EmploymentTypes: slices.Clone(s.employmentTypes),
		Salary:          s.salary,
	}
}
