package jobsapi

import (
	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/pkg/jobsapi"
)

// NormalizeList renames list payload fields into domain jobs, keeping order
func NormalizeList(resp jobsapi.ListResponse) []domain.JobSummary {
	out := make([]domain.JobSummary, 0, len(resp.Jobs))
	for _, p := range resp.Jobs {
		out = append(out, summary(p))
	}
	return out
}

// NormalizeDetail renames a detail payload into a job detail and its
// similar jobs
func NormalizeDetail(resp jobsapi.DetailResponse) domain.JobDetailResult {
	d := resp.JobDetails

	skills := make([]domain.Skill, 0, len(d.Skills))
	for _, s := range d.Skills {
		skills = append(skills, domain.Skill{
			Name:     s.Name,
			ImageURL: s.ImageURL,
		})
	}

	similar := make([]domain.SimilarJob, 0, len(resp.SimilarJobs))
	for _, p := range resp.SimilarJobs {
		similar = append(similar, domain.SimilarJob{
			ID:             p.ID,
			Title:          p.Title,
			CompanyLogoURL: p.CompanyLogoURL,
			Rating:         p.Rating,
			EmploymentType: p.EmploymentType,
			Location:       p.Location,
			JobDescription: p.JobDescription,
		})
	}

	return domain.JobDetailResult{
		Job: domain.JobDetail{
			JobSummary:        summary(d.JobPosting),
			CompanyWebsiteURL: d.CompanyWebsiteURL,
			LifeAtCompany: domain.LifeAtCompany{
				Description: d.LifeAtCompany.Description,
				ImageURL:    d.LifeAtCompany.ImageURL,
			},
			Skills: skills,
		},
		SimilarJobs: similar,
	}
}

func summary(p jobsapi.JobPosting) domain.JobSummary {
	return domain.JobSummary{
		ID:              p.ID,
		Title:           p.Title,
		CompanyLogoURL:  p.CompanyLogoURL,
		Rating:          p.Rating,
		EmploymentType:  p.EmploymentType,
		Location:        p.Location,
		PackagePerAnnum: p.PackagePerAnnum,
		JobDescription:  p.JobDescription,
	}
}
