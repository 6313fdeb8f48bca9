package tools

import (
	"github.com/honeycarbs/jobboard/internal/controller"
	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/filter"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/fetch"
	"github.com/honeycarbs/jobboard/pkg/jobsapi"
)

const (
	msgLoading      = "Loading..."
	msgNoJobs       = "No Jobs Found. We could not find any jobs. Try other filters."
	msgFailure      = "Oops! Something Went Wrong. We cannot seem to find the page you are looking for."
	msgUnauthorized = "Not signed in or the session expired. Sign in again and retry."
)

// AppliedView is the query the shown results belong to
type AppliedView struct {
	SearchTerm      string   `json:"search_term"`
	EmploymentTypes []string `json:"employment_types"`
	MinimumPackage  string   `json:"minimum_package"`
}

// ListView is what a list session renders
type ListView struct {
	SessionID  string         `json:"session_id"`
	Status     string         `json:"status"`
	Seq        uint64         `json:"seq"`
	SearchTerm string         `json:"search_term"` // live, possibly not applied
	Applied    AppliedView    `json:"applied"`
	Jobs       []job.CardView `json:"jobs,omitempty"`
	Message    string         `json:"message,omitempty"`
	ErrorKind  string         `json:"error_kind,omitempty"`
	RetryHint  string         `json:"retry_hint,omitempty"`
}

// SkillView is a required skill on the details page
type SkillView struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// JobView is the job on its details page. Package and description are
// shown as delivered, without the list card formatting.
type JobView struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	CompanyLogoURL string  `json:"companyLogoUrl"`
	Rating         float64 `json:"rating"`
	EmploymentType string  `json:"employmentType"`
	Location       string  `json:"location"`
	Package        string  `json:"package"`
	Description    string  `json:"description"`
}

// SimilarJobView is a similar job entry. Similar jobs carry no package.
type SimilarJobView struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	CompanyLogoURL string  `json:"companyLogoUrl"`
	Rating         float64 `json:"rating"`
	EmploymentType string  `json:"employmentType"`
	Location       string  `json:"location"`
	Description    string  `json:"description"`
}

// DetailView is what a job details page renders
type DetailView struct {
	JobID       string                `json:"job_id"`
	Status      string                `json:"status"`
	Seq         uint64                `json:"seq"`
	Job         *JobView              `json:"job,omitempty"`
	WebsiteURL  string                `json:"company_website_url,omitempty"`
	Skills      []SkillView           `json:"skills,omitempty"`
	LifeAt      *domain.LifeAtCompany `json:"life_at_company,omitempty"`
	SimilarJobs []SimilarJobView      `json:"similar_jobs,omitempty"`
	Message     string                `json:"message,omitempty"`
	ErrorKind   string                `json:"error_kind,omitempty"`
	RetryHint   string                `json:"retry_hint,omitempty"`
}

// FilterOptionView is a catalog entry with its staged state
type FilterOptionView struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// FiltersView is the filter panel: staged selection against the catalog
type FiltersView struct {
	SessionID       string             `json:"session_id"`
	EmploymentTypes []FilterOptionView `json:"employment_types"`
	SalaryRanges    []FilterOptionView `json:"salary_ranges"`
	Applied         AppliedView        `json:"applied"`
	PendingChanges  bool               `json:"pending_changes"`
}

func newAppliedView(s controller.ListSnapshot) AppliedView {
	types := s.Applied.EmploymentTypes()
	if types == nil {
		types = []string{}
	}
	return AppliedView{
		SearchTerm:      s.Applied.SearchTerm,
		EmploymentTypes: types,
		MinimumPackage:  s.Applied.MinimumSalary,
	}
}

func newListView(sessionID string, s controller.ListSnapshot) ListView {
	v := ListView{
		SessionID:  sessionID,
		Status:     s.Status.String(),
		Seq:        s.Seq,
		SearchTerm: s.SearchTerm,
		Applied:    newAppliedView(s),
	}

	switch s.Status {
	case fetch.Idle:
	case fetch.InProgress:
		v.Message = msgLoading
	case fetch.Success:
		v.Jobs = job.NewCardViews(s.Jobs)
		if len(v.Jobs) == 0 {
			v.Message = msgNoJobs
		}
	case fetch.Failure:
		// data from an earlier success is never shown next to a failure
		v.Message, v.ErrorKind = failureMessage(s.Err)
		v.RetryHint = "call jobs_retry with this session_id"
	}

	return v
}

func newDetailView(s controller.DetailSnapshot) DetailView {
	v := DetailView{
		JobID:  s.JobID,
		Status: s.Status.String(),
		Seq:    s.Seq,
	}

	switch s.Status {
	case fetch.Idle:
	case fetch.InProgress:
		v.Message = msgLoading
	case fetch.Success:
		d := s.Detail
		v.Job = newJobView(d.Job.JobSummary)
		v.WebsiteURL = d.Job.CompanyWebsiteURL
		v.Skills = make([]SkillView, 0, len(d.Job.Skills))
		for _, sk := range d.Job.Skills {
			v.Skills = append(v.Skills, SkillView{Name: sk.Name, ImageURL: sk.ImageURL})
		}
		life := d.Job.LifeAtCompany
		v.LifeAt = &life
		v.SimilarJobs = make([]SimilarJobView, 0, len(d.SimilarJobs))
		for _, sim := range d.SimilarJobs {
			v.SimilarJobs = append(v.SimilarJobs, newSimilarJobView(sim))
		}
	case fetch.Failure:
		v.Message, v.ErrorKind = failureMessage(s.Err)
		v.RetryHint = "call job_details_retry with this job_id"
	}

	return v
}

func newFiltersView(sessionID string, s controller.ListSnapshot) FiltersView {
	selectedTypes := make(map[string]bool, len(s.Staged.EmploymentTypes))
	for _, id := range s.Staged.EmploymentTypes {
		selectedTypes[id] = true
	}

	v := FiltersView{
		SessionID:       sessionID,
		EmploymentTypes: make([]FilterOptionView, 0, len(filter.EmploymentTypes)),
		SalaryRanges:    make([]FilterOptionView, 0, len(filter.SalaryRanges)),
		Applied:         newAppliedView(s),
	}
	for _, o := range filter.EmploymentTypes {
		v.EmploymentTypes = append(v.EmploymentTypes, FilterOptionView{ID: o.ID, Label: o.Label, Selected: selectedTypes[o.ID]})
	}
	for _, o := range filter.SalaryRanges {
		v.SalaryRanges = append(v.SalaryRanges, FilterOptionView{ID: o.ID, Label: o.Label, Selected: s.Staged.Salary == o.ID})
	}

	staged := s.Applied.WithFilters(s.Staged.EmploymentTypes, s.Staged.Salary)
	v.PendingChanges = !staged.Equal(s.Applied)

	return v
}

func failureMessage(err error) (string, string) {
	kind := jobsapi.KindOf(err)
	if kind == jobsapi.KindUnauthorized {
		return msgUnauthorized, kind.String()
	}
	return msgFailure, kind.String()
}

func newJobView(j domain.JobSummary) *JobView {
	return &JobView{
		ID:             j.ID,
		Title:          j.Title,
		CompanyLogoURL: j.CompanyLogoURL,
		Rating:         j.Rating,
		EmploymentType: j.EmploymentType,
		Location:       j.Location,
		Package:        j.PackagePerAnnum,
		Description:    j.JobDescription,
	}
}

func newSimilarJobView(s domain.SimilarJob) SimilarJobView {
	return SimilarJobView{
		ID:             s.ID,
		Title:          s.Title,
		CompanyLogoURL: s.CompanyLogoURL,
		Rating:         s.Rating,
		EmploymentType: s.EmploymentType,
		Location:       s.Location,
		Description:    s.JobDescription,
	}
}
