package tools_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/credential"
	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/query"
	"github.com/honeycarbs/jobboard/internal/mcp"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// stubSource answers immediately with whatever the test configured and
// records every request
type stubSource struct {
	mu       sync.Mutex
	requests []string
	tokens   []string
	list     func(desc query.Descriptor) ([]domain.JobSummary, error)
	detail   func(desc query.Descriptor) (domain.JobDetailResult, error)
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) ListJobs(_ context.Context, desc query.Descriptor, token string) ([]domain.JobSummary, error) {
	s.record(desc, token)
	if s.list == nil {
		return nil, nil
	}
	return s.list(desc)
}

func (s *stubSource) JobDetail(_ context.Context, desc query.Descriptor, token string) (domain.JobDetailResult, error) {
	s.record(desc, token)
	if s.detail == nil {
		return domain.JobDetailResult{}, nil
	}
	return s.detail(desc)
}

func (s *stubSource) record(desc query.Descriptor, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, desc.Encode())
	s.tokens = append(s.tokens, token)
}

func (s *stubSource) lastRequest(t *testing.T) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("no request recorded")
	}
	return s.requests[len(s.requests)-1]
}

func (s *stubSource) lastToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tokens) == 0 {
		return ""
	}
	return s.tokens[len(s.tokens)-1]
}

func (s *stubSource) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type harness struct {
	client *sdkmcp.ClientSession
	src    *stubSource
}

func newHarness(t *testing.T, src *stubSource, sheets tools.SheetsClient, store tools.CredentialStore) *harness {
	t.Helper()
	return newHarnessWithCredentials(t, src, sheets, store, credential.Static("tok"))
}

func newHarnessWithCredentials(t *testing.T, src *stubSource, sheets tools.SheetsClient, store tools.CredentialStore, creds credential.Provider) *harness {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "jobboard-test", Version: "0.0.0"}, nil)
	sessions := mcp.NewSessions(src, creds, logging.NewNop())
	tools.Register(server, logging.NewNop(),
		tools.WithListTools(sessions),
		tools.WithDetailTools(sessions),
		tools.WithSheetsExport(sessions, sheets),
		tools.WithLogout(store, creds),
	)

	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "jobboard-test-client", Version: "0.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}

	t.Cleanup(func() {
		_ = clientSession.Close()
		_ = serverSession.Wait()
		sessions.DisposeAll()
	})

	return &harness{client: clientSession, src: src}
}

// call invokes a tool and decodes its text content into out. A tool error
// fails the test.
func (h *harness) call(t *testing.T, name string, args map[string]any, out any) *sdkmcp.CallToolResult {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.client.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if res.IsError {
		t.Fatalf("%s returned tool error: %s", name, text(res))
	}
	if out != nil {
		if err := json.Unmarshal([]byte(text(res)), out); err != nil {
			t.Fatalf("%s: decode %q: %v", name, text(res), err)
		}
	}
	return res
}

func (h *harness) callErr(t *testing.T, name string, args map[string]any) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.client.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		// argument validation failures may surface as protocol errors
		return err.Error()
	}
	if !res.IsError {
		t.Fatalf("%s succeeded, want tool error: %s", name, text(res))
	}
	return text(res)
}

func text(res *sdkmcp.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func (h *harness) open(t *testing.T) tools.ListView {
	t.Helper()
	var view tools.ListView
	h.call(t, "jobs_open", map[string]any{}, &view)
	if view.SessionID == "" {
		t.Fatal("jobs_open returned no session_id")
	}
	return view
}

func sampleJobs() []domain.JobSummary {
	return []domain.JobSummary{
		{ID: "j1", Title: "Backend Engineer", EmploymentType: "Full Time", PackagePerAnnum: "21 LPA", JobDescription: "Build APIs", Rating: 4},
		{ID: "j2", Title: "Frontend", EmploymentType: "Internship", PackagePerAnnum: "4 LPA", JobDescription: "original", Rating: 3.5},
	}
}
