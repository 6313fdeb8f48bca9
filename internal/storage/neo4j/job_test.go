package neo4j

import (
	"testing"

	"github.com/honeycarbs/jobboard/internal/domain"
)

func TestDetailParams(t *testing.T) {
	detail := domain.JobDetailResult{
		Job: domain.JobDetail{
			JobSummary: domain.JobSummary{
				ID:              "job-1",
				Title:           "Backend Engineer",
				EmploymentType:  "Full Time",
				PackagePerAnnum: "21 LPA",
			},
			CompanyWebsiteURL: "https://example.com",
			LifeAtCompany:     domain.LifeAtCompany{Description: "calm", ImageURL: "https://example.com/life.png"},
			Skills:            []domain.Skill{{Name: "Go", ImageURL: "go.png"}, {Name: "Docker"}},
		},
		SimilarJobs: []domain.SimilarJob{
			{ID: "job-2", Title: "Platform Engineer"},
			{ID: "job-1"}, // self reference is dropped
			{ID: ""},
			{ID: "job-3"},
		},
	}

	jobs, link := detailParams(detail, 42)

	if len(jobs) != 3 {
		t.Fatalf("len(jobs) = %d, want 3", len(jobs))
	}
	if jobs[0]["id"] != "job-1" || jobs[0]["packagePerAnnum"] != "21 LPA" || jobs[0]["seenAt"] != int64(42) {
		t.Errorf("first row = %v", jobs[0])
	}
	if jobs[1]["id"] != "job-2" || jobs[1]["packagePerAnnum"] != "" {
		t.Errorf("similar row = %v", jobs[1])
	}

	similar, _ := link["similar"].([]string)
	if len(similar) != 2 || similar[0] != "job-2" || similar[1] != "job-3" {
		t.Errorf("similar = %v", link["similar"])
	}

	skills, _ := link["skills"].([]map[string]any)
	if len(skills) != 2 || skills[0]["name"] != "Go" || skills[0]["imageUrl"] != "go.png" {
		t.Errorf("skills = %v", link["skills"])
	}
	if link["lifeAtCompany"] != "calm" || link["companyWebsiteUrl"] != "https://example.com" {
		t.Errorf("link = %v", link)
	}
}

func TestDetailParamsNoSimilar(t *testing.T) {
	jobs, link := detailParams(domain.JobDetailResult{Job: domain.JobDetail{JobSummary: domain.JobSummary{ID: "x"}}}, 1)

	if len(jobs) != 1 {
		t.Errorf("len(jobs) = %d, want 1", len(jobs))
	}
	if similar, _ := link["similar"].([]string); similar == nil || len(similar) != 0 {
		t.Errorf("similar = %#v, want empty non-nil slice", link["similar"])
	}
}
