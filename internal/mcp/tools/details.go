package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

// DetailParams defines the arguments for the job_details tools
type DetailParams struct {
	JobID string `json:"job_id" jsonschema:"Job id from a jobs list card"`
}

type detailTools struct {
	sessions Sessions
	logger   *logging.Logger
}

// DetailCloseResult reports a closed job details page
type DetailCloseResult struct {
	JobID  string `json:"job_id"`
	Closed bool   `json:"closed"`
}

// WithDetailTools registers job_details, job_details_retry and job_details_close
func WithDetailTools(sessions Sessions) Option {
	return func(reg *registry) {
		t := detailTools{sessions: sessions, logger: reg.logger}

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_details",
			Description: "Load one job with its skills, life at company and similar jobs",
		}, t.open)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_details_retry",
			Description: "Refetch a job previously opened with job_details",
		}, t.retry)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_details_close",
			Description: "Close a job opened with job_details",
		}, t.close)
	}
}

func (t detailTools) open(ctx context.Context, _ *sdkmcp.CallToolRequest, params DetailParams) (*sdkmcp.CallToolResult, any, error) {
	if params.JobID == "" {
		return nil, nil, fmt.Errorf("job_id is required")
	}

	d, err := t.sessions.OpenDetail(params.JobID)
	if err != nil {
		t.logger.Error("job_details: failed to open", "job_id", params.JobID, "err", err)
		return nil, nil, fmt.Errorf("failed to open job %q: %w", params.JobID, err)
	}

	if err := d.Initialize().Wait(ctx); err != nil {
		t.logger.Debug("returning before detail fetch settled", "job_id", params.JobID, "err", err)
	}

	view := newDetailView(d.Snapshot())
	res, err := jsonResult(view)
	return res, view, err
}

func (t detailTools) retry(ctx context.Context, _ *sdkmcp.CallToolRequest, params DetailParams) (*sdkmcp.CallToolResult, any, error) {
	d, ok := t.sessions.Detail(params.JobID)
	if !ok {
		return nil, nil, fmt.Errorf("job %q is not open, call job_details first", params.JobID)
	}

	if err := d.Retry().Wait(ctx); err != nil {
		t.logger.Debug("returning before detail fetch settled", "job_id", params.JobID, "err", err)
	}

	view := newDetailView(d.Snapshot())
	res, err := jsonResult(view)
	return res, view, err
}

func (t detailTools) close(_ context.Context, _ *sdkmcp.CallToolRequest, params DetailParams) (*sdkmcp.CallToolResult, any, error) {
	out := DetailCloseResult{JobID: params.JobID, Closed: t.sessions.CloseDetail(params.JobID)}
	if !out.Closed {
		return textResult(fmt.Sprintf("[job_details_close] no open job %q", params.JobID)), out, nil
	}
	return textResult(fmt.Sprintf("[job_details_close] closed job %q", params.JobID)), out, nil
}
