package domain

// JobSummary is the list-view job entity
type JobSummary struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	CompanyLogoURL  string  `json:"companyLogoUrl"`
	Rating          float64 `json:"rating"` // 0..5
	EmploymentType  string  `json:"employmentType"`
	Location        string  `json:"location"`
	PackagePerAnnum string  `json:"packagePerAnnum"` // unit-bearing, e.g. "21 LPA"
	JobDescription  string  `json:"jobDescription"`
}

// LifeAtCompany describes the employer
type LifeAtCompany struct {
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Skill is a required skill. Names are unique within a job.
type Skill struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// JobDetail is the full job entity shown on the details page
type JobDetail struct {
	JobSummary
	CompanyWebsiteURL string        `json:"companyWebsiteUrl"`
	LifeAtCompany     LifeAtCompany `json:"lifeAtCompany"`
	Skills            []Skill       `json:"skills"`
}

// SimilarJob is a summary delivered alongside a job detail
type SimilarJob struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	CompanyLogoURL string  `json:"companyLogoUrl"`
	Rating         float64 `json:"rating"`
	EmploymentType string  `json:"employmentType"`
	Location       string  `json:"location"`
	JobDescription string  `json:"jobDescription"`
}

// JobDetailResult wraps a detail fetch
type JobDetailResult struct {
	Job         JobDetail    `json:"job"`
	SimilarJobs []SimilarJob `json:"similarJobs"`
}
