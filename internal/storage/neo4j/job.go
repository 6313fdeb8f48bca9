package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	pkgneo4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

// Ensure JobRepository implements job.Repository
var _ job.Repository = (*JobRepository)(nil)

// JobRepository records browsed jobs in Neo4j
type JobRepository struct {
	client *pkgneo4j.Client
	clock  func() time.Time
}

// NewJobRepository creates a JobRepository with a Neo4j client
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{
		client: client,
		clock:  time.Now,
	}
}

const upsertJobsQuery = `
	UNWIND $jobs AS job
	MERGE (j:Job {id: job.id})
	SET j.title = job.title,
	    j.companyLogoUrl = job.companyLogoUrl,
	    j.rating = job.rating,
	    j.employmentType = job.employmentType,
	    j.location = job.location,
	    j.description = job.description,
	    j.seenAt = datetime({epochMillis: job.seenAt})
	FOREACH (_ IN CASE WHEN job.packagePerAnnum <> "" THEN [1] ELSE [] END |
		SET j.packagePerAnnum = job.packagePerAnnum
	)
	FOREACH (_ IN CASE WHEN job.employmentType <> "" THEN [1] ELSE [] END |
		MERGE (t:EmploymentType {name: job.employmentType})
		MERGE (j)-[:OF_TYPE]->(t)
	)
`

const upsertDetailQuery = `
	MATCH (j:Job {id: $id})
	SET j.companyWebsiteUrl = $companyWebsiteUrl,
	    j.lifeAtCompany = $lifeAtCompany,
	    j.lifeAtCompanyImageUrl = $lifeAtCompanyImageUrl
	WITH j
	FOREACH (skill IN $skills |
		MERGE (s:Skill {name: skill.name})
		SET s.imageUrl = skill.imageUrl
		MERGE (j)-[:REQUIRES]->(s)
	)
	WITH j
	UNWIND $similar AS sid
	MATCH (o:Job {id: sid})
	MERGE (j)-[:SIMILAR_TO]->(o)
`

// RecordListing upserts jobs from a list result
func (r *JobRepository) RecordListing(ctx context.Context, jobs []domain.JobSummary) error {
	if len(jobs) == 0 {
		return nil
	}

	seenAt := r.clock().UnixMilli()
	jobsData := make([]map[string]any, 0, len(jobs))
	for _, j := range jobs {
		jobsData = append(jobsData, jobProps(j, seenAt))
	}

	return r.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, upsertJobsQuery, map[string]any{"jobs": jobsData})
		if err != nil {
			return nil, fmt.Errorf("neo4j: upsert listing: %w", err)
		}
		return result.Consume(ctx)
	})
}

// RecordDetail upserts the job and its similar jobs, then links skills and
// SIMILAR_TO edges
func (r *JobRepository) RecordDetail(ctx context.Context, detail domain.JobDetailResult) error {
	if detail.Job.ID == "" {
		return nil
	}

	jobsData, link := detailParams(detail, r.clock().UnixMilli())

	return r.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, upsertJobsQuery, map[string]any{"jobs": jobsData}); err != nil {
			return nil, fmt.Errorf("neo4j: upsert detail jobs: %w", err)
		}

		result, err := tx.Run(ctx, upsertDetailQuery, link)
		if err != nil {
			return nil, fmt.Errorf("neo4j: link detail: %w", err)
		}
		return result.Consume(ctx)
	})
}

// detailParams returns the job rows to upsert (the job first, then similar
// jobs) and the parameters of the linking query
func detailParams(detail domain.JobDetailResult, seenAt int64) ([]map[string]any, map[string]any) {
	jobsData := []map[string]any{jobProps(detail.Job.JobSummary, seenAt)}
	similarIDs := make([]string, 0, len(detail.SimilarJobs))
	for _, s := range detail.SimilarJobs {
		if s.ID == "" || s.ID == detail.Job.ID {
			continue
		}
		jobsData = append(jobsData, jobProps(domain.JobSummary{
			ID:             s.ID,
			Title:          s.Title,
			CompanyLogoURL: s.CompanyLogoURL,
			Rating:         s.Rating,
			EmploymentType: s.EmploymentType,
			Location:       s.Location,
			JobDescription: s.JobDescription,
		}, seenAt))
		similarIDs = append(similarIDs, s.ID)
	}

	skills := make([]map[string]any, 0, len(detail.Job.Skills))
	for _, s := range detail.Job.Skills {
		skills = append(skills, map[string]any{
			"name":     s.Name,
			"imageUrl": s.ImageURL,
		})
	}

	return jobsData, map[string]any{
		"id":                    detail.Job.ID,
		"companyWebsiteUrl":     detail.Job.CompanyWebsiteURL,
		"lifeAtCompany":         detail.Job.LifeAtCompany.Description,
		"lifeAtCompanyImageUrl": detail.Job.LifeAtCompany.ImageURL,
		"skills":                skills,
		"similar":               similarIDs,
	}
}

func jobProps(j domain.JobSummary, seenAt int64) map[string]any {
	return map[string]any{
		"id":              j.ID,
		"title":           j.Title,
		"companyLogoUrl":  j.CompanyLogoURL,
		"rating":          j.Rating,
		"employmentType":  j.EmploymentType,
		"location":        j.Location,
		"packagePerAnnum": j.PackagePerAnnum,
		"description":     j.JobDescription,
		"seenAt":          seenAt,
	}
}
