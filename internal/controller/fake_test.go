package controller_test

import (
	"context"
	"testing"
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/query"
	"github.com/honeycarbs/jobboard/internal/fetch"
)

type reply struct {
	jobs   []domain.JobSummary
	detail domain.JobDetailResult
	err    error
}

// call is one request seen by fakeSource. The test decides when and how
// it resolves.
type call struct {
	desc  query.Descriptor
	token string
	reply chan reply
}

func (c *call) resolve(r reply) { c.reply <- r }

// fakeSource blocks every request until the test resolves it. It ignores
// cancellation so responses can arrive after being superseded.
type fakeSource struct {
	calls chan *call
}

func newFakeSource() *fakeSource {
	return &fakeSource{calls: make(chan *call, 16)}
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) ListJobs(_ context.Context, desc query.Descriptor, token string) ([]domain.JobSummary, error) {
	c := &call{desc: desc, token: token, reply: make(chan reply, 1)}
	f.calls <- c
	r := <-c.reply
	return r.jobs, r.err
}

func (f *fakeSource) JobDetail(_ context.Context, desc query.Descriptor, token string) (domain.JobDetailResult, error) {
	c := &call{desc: desc, token: token, reply: make(chan reply, 1)}
	f.calls <- c
	r := <-c.reply
	return r.detail, r.err
}

func (f *fakeSource) next(t *testing.T) *call {
	t.Helper()
	select {
	case c := <-f.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("expected a request, got none")
		return nil
	}
}

func (f *fakeSource) expectNone(t *testing.T) {
	t.Helper()
	select {
	case c := <-f.calls:
		t.Fatalf("unexpected request %q", c.desc.Encode())
	case <-time.After(30 * time.Millisecond):
	}
}

func wait(t *testing.T, h *fetch.Handle) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("fetch %d did not complete: %v", h.Seq(), err)
	}
}

func jobs(ids ...string) []domain.JobSummary {
	out := make([]domain.JobSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.JobSummary{ID: id, Title: "job " + id, EmploymentType: "Full Time", PackagePerAnnum: "10 LPA"})
	}
	return out
}

func ids(js []domain.JobSummary) []string {
	out := make([]string, 0, len(js))
	for _, j := range js {
		out = append(out, j.ID)
	}
	return out
}
