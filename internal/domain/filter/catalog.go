package filter

// Option is a selectable filter value shown in the filter panel
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var (
	// EmploymentTypes lists the employment type ids the API understands
	EmploymentTypes = []Option{
		{ID: "FULLTIME", Label: "Full Time"},
		{ID: "PARTTIME", Label: "Part Time"},
		{ID: "FREELANCE", Label: "Freelance"},
		{ID: "INTERNSHIP", Label: "Internship"},
	}

	// SalaryRanges lists minimum package thresholds in rupees per annum
	SalaryRanges = []Option{
		{ID: "1000000", Label: "10 LPA and above"},
		{ID: "2000000", Label: "20 LPA and above"},
		{ID: "3000000", Label: "30 LPA and above"},
		{ID: "4000000", Label: "40 LPA and above"},
	}
)

func LookupEmploymentType(id string) (Option, bool) {
	return lookup(EmploymentTypes, id)
}

func LookupSalaryRange(id string) (Option, bool) {
	return lookup(SalaryRanges, id)
}

func lookup(options []Option, id string) (Option, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
