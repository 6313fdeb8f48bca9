package query

import "slices"

// Applied is the search/filter snapshot behind the most recently issued
// fetch. It is a value: use the With* methods to derive a new one.
type Applied struct {
	SearchTerm      string
	employmentTypes []string
	MinimumSalary   string // empty means no minimum
}

// NewApplied copies employmentTypes so later edits by the caller cannot
// reach the snapshot
func NewApplied(term string, employmentTypes []string, minimumSalary string) Applied {
	return Applied{
		SearchTerm:      term,
		employmentTypes: slices.Clone(employmentTypes),
		MinimumSalary:   minimumSalary,
	}
}

// EmploymentTypes returns a copy of the applied employment types in
// insertion order
func (a Applied) EmploymentTypes() []string {
	return slices.Clone(a.employmentTypes)
}

// WithSearchTerm returns a copy with the term replaced
func (a Applied) WithSearchTerm(term string) Applied {
	return NewApplied(term, a.employmentTypes, a.MinimumSalary)
}

// WithFilters returns a copy with both filter fields replaced
func (a Applied) WithFilters(employmentTypes []string, minimumSalary string) Applied {
	return NewApplied(a.SearchTerm, employmentTypes, minimumSalary)
}

// HasFilters reports whether any filter field is set
func (a Applied) HasFilters() bool {
	return len(a.employmentTypes) > 0 || a.MinimumSalary != ""
}

// Equal compares two snapshots, including employment type order
func (a Applied) Equal(b Applied) bool {
	return a.SearchTerm == b.SearchTerm &&
		a.MinimumSalary == b.MinimumSalary &&
		slices.Equal(a.employmentTypes, b.employmentTypes)
}

// Descriptor builds the list request for this snapshot
func (a Applied) Descriptor() Descriptor {
	return Build(a.SearchTerm, a.employmentTypes, a.MinimumSalary)
}
