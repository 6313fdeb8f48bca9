package jobsapi

import (
	"net/http"
	"time"
)

// Config defines job board API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration // used only when HTTPClient is nil
}

// Client executes requests against the job board API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Param is a single query parameter. Order is significant.
type Param struct {
	Key   string
	Value string
}

// ListResponse is the raw payload of GET /jobs
type ListResponse struct {
	Jobs  []JobPosting `json:"jobs"`
	Total int          `json:"total"`
}

// DetailResponse is the raw payload of GET /jobs/{id}
type DetailResponse struct {
	JobDetails  JobDetails   `json:"job_details"`
	SimilarJobs []JobPosting `json:"similar_jobs"`
}

// JobPosting is the summary shape shared by list and similar jobs.
// Similar jobs carry no package_per_annum.
type JobPosting struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	CompanyLogoURL  string  `json:"company_logo_url"`
	EmploymentType  string  `json:"employment_type"`
	JobDescription  string  `json:"job_description"`
	Location        string  `json:"location"`
	PackagePerAnnum string  `json:"package_per_annum"`
	Rating          float64 `json:"rating"`
}

type JobDetails struct {
	JobPosting
	CompanyWebsiteURL string        `json:"company_website_url"`
	LifeAtCompany     LifeAtCompany `json:"life_at_company"`
	Skills            []Skill       `json:"skills"`
}

type LifeAtCompany struct {
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Skill struct {
	ImageURL string `json:"image_url"`
	Name     string `json:"name"`
}
