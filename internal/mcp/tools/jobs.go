package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/controller"
	"github.com/honeycarbs/jobboard/internal/domain/filter"
	"github.com/honeycarbs/jobboard/internal/fetch"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Sessions is the controller registry the tools drive
type Sessions interface {
	OpenList() (string, *controller.List, error)
	List(id string) (*controller.List, bool)
	CloseList(id string) bool
	OpenDetail(jobID string) (*controller.Detail, error)
	Detail(jobID string) (*controller.Detail, bool)
	CloseDetail(jobID string) bool
}

// OpenParams defines the arguments for jobs_open
type OpenParams struct{}

// SessionParams addresses an open list session
type SessionParams struct {
	SessionID string `json:"session_id" jsonschema:"Browse session id returned by jobs_open"`
}

// SearchParams defines the arguments for jobs_search
type SearchParams struct {
	SessionID string `json:"session_id" jsonschema:"Browse session id returned by jobs_open"`
	Term      string `json:"term" jsonschema:"Search text, sent verbatim; empty matches everything"`
}

// StageFilterParams defines the arguments for jobs_stage_filter
type StageFilterParams struct {
	SessionID      string `json:"session_id" jsonschema:"Browse session id returned by jobs_open"`
	EmploymentType string `json:"employment_type,omitempty" jsonschema:"Employment type id, e.g. FULLTIME"`
	Included       bool   `json:"included,omitempty" jsonschema:"Whether employment_type is selected"`
	SalaryRange    string `json:"salary_range,omitempty" jsonschema:"Minimum package id, e.g. 1000000"`
}

// CloseResult reports a closed session
type CloseResult struct {
	SessionID string `json:"session_id"`
	Closed    bool   `json:"closed"`
}

type listTools struct {
	sessions Sessions
	logger   *logging.Logger
}

// WithListTools registers the jobs_* tools that drive list sessions
func WithListTools(sessions Sessions) Option {
	return func(reg *registry) {
		t := listTools{sessions: sessions, logger: reg.logger}

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_open",
			Description: "Open a job browsing session and load the unfiltered job list",
		}, t.open)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_search",
			Description: "Set the search text and refetch with the applied filters; staged filters are not applied",
		}, t.search)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_stage_filter",
			Description: "Stage an employment type or salary range selection without fetching",
		}, t.stageFilter)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_apply_filters",
			Description: "Apply the staged filters together with the current search text",
		}, t.applyFilters)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_reset_filters",
			Description: "Clear staged and applied filters and refetch",
		}, t.resetFilters)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_retry",
			Description: "Refetch the applied query unchanged",
		}, t.retry)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_view",
			Description: "Show the current job list without fetching",
		}, t.view)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_filters",
			Description: "Show the filter catalog with the staged selection and the applied query",
		}, t.filters)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_close",
			Description: "Close a browsing session",
		}, t.close)
	}
}

func (t listTools) open(ctx context.Context, _ *sdkmcp.CallToolRequest, _ OpenParams) (*sdkmcp.CallToolResult, any, error) {
	id, l, err := t.sessions.OpenList()
	if err != nil {
		t.logger.Error("jobs_open: failed to open session", "err", err)
		return nil, nil, fmt.Errorf("failed to open session: %w", err)
	}

	return t.settle(ctx, id, l, l.Initialize())
}

func (t listTools) search(ctx context.Context, _ *sdkmcp.CallToolRequest, params SearchParams) (*sdkmcp.CallToolResult, any, error) {
	l, err := t.list(params.SessionID)
	if err != nil {
		return nil, nil, err
	}

	l.UpdateSearchTerm(params.Term)
	return t.settle(ctx, params.SessionID, l, l.Search())
}

func (t listTools) stageFilter(_ context.Context, _ *sdkmcp.CallToolRequest, params StageFilterParams) (*sdkmcp.CallToolResult, any, error) {
	l, err := t.list(params.SessionID)
	if err != nil {
		return nil, nil, err
	}

	if params.EmploymentType == "" && params.SalaryRange == "" {
		return nil, nil, fmt.Errorf("employment_type or salary_range is required")
	}
	if params.EmploymentType != "" {
		if _, ok := filter.LookupEmploymentType(params.EmploymentType); !ok {
			return nil, nil, fmt.Errorf("unknown employment_type %q", params.EmploymentType)
		}
	}
	if params.SalaryRange != "" {
		if _, ok := filter.LookupSalaryRange(params.SalaryRange); !ok {
			return nil, nil, fmt.Errorf("unknown salary_range %q", params.SalaryRange)
		}
	}

	if params.EmploymentType != "" {
		l.ToggleEmploymentType(params.EmploymentType, params.Included)
	}
	if params.SalaryRange != "" {
		l.SetSalaryRange(params.SalaryRange)
	}

	view := newFiltersView(params.SessionID, l.Snapshot())
	res, err := jsonResult(view)
	return res, view, err
}

func (t listTools) applyFilters(ctx context.Context, _ *sdkmcp.CallToolRequest, params SessionParams) (*sdkmcp.CallToolResult, any, error) {
	l, err := t.list(params.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return t.settle(ctx, params.SessionID, l, l.ApplyFilters())
}

func (t listTools) resetFilters(ctx context.Context, _ *sdkmcp.CallToolRequest, params SessionParams) (*sdkmcp.CallToolResult, any, error) {
	l, err := t.list(params.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return t.settle(ctx, params.SessionID, l, l.ResetFilters())
}

func (t listTools) retry(ctx context.Context, _ *sdkmcp.CallToolRequest, params SessionParams) (*sdkmcp.CallToolResult, any, error) {
	l, err := t.list(params.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return t.settle(ctx, params.SessionID, l, l.Retry())
}

func (t listTools) view(_ context.Context, _ *sdkmcp.CallToolRequest, params SessionParams) (*sdkmcp.CallToolResult, any, error) {
	l, err := t.list(params.SessionID)
	if err != nil {
		return nil, nil, err
	}

	view := newListView(params.SessionID, l.Snapshot())
	res, err := jsonResult(view)
	return res, view, err
}

func (t listTools) filters(_ context.Context, _ *sdkmcp.CallToolRequest, params SessionParams) (*sdkmcp.CallToolResult, any, error) {
	l, err := t.list(params.SessionID)
	if err != nil {
		return nil, nil, err
	}

	view := newFiltersView(params.SessionID, l.Snapshot())
	res, err := jsonResult(view)
	return res, view, err
}

func (t listTools) close(_ context.Context, _ *sdkmcp.CallToolRequest, params SessionParams) (*sdkmcp.CallToolResult, any, error) {
	result := CloseResult{SessionID: params.SessionID, Closed: t.sessions.CloseList(params.SessionID)}
	if !result.Closed {
		return textResult(fmt.Sprintf("[jobs_close] no open session %q", params.SessionID)), result, nil
	}
	return textResult(fmt.Sprintf("[jobs_close] closed session %q", params.SessionID)), result, nil
}

func (t listTools) list(sessionID string) (*controller.List, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	l, ok := t.sessions.List(sessionID)
	if !ok {
		return nil, fmt.Errorf("unknown session_id %q, call jobs_open first", sessionID)
	}
	return l, nil
}

// settle waits for the fetch behind h and renders the list. If ctx ends
// first the view shows the fetch still in progress.
func (t listTools) settle(ctx context.Context, sessionID string, l *controller.List, h *fetch.Handle) (*sdkmcp.CallToolResult, any, error) {
	if err := h.Wait(ctx); err != nil {
		t.logger.Debug("returning before fetch settled", "session_id", sessionID, "seq", h.Seq(), "err", err)
	}

	view := newListView(sessionID, l.Snapshot())
	res, err := jsonResult(view)
	return res, view, err
}
