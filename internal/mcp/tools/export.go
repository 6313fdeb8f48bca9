package tools

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/fetch"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// SheetRow is one exported job card
type SheetRow struct {
	ID             string
	Title          string
	EmploymentType string
	Location       string
	Package        string
	Rating         string
}

// SheetHeader names the SheetRow columns
var SheetHeader = []string{"ID", "Title", "Employment Type", "Location", "Package", "Rating"}

// SheetTarget locates the destination tab
type SheetTarget struct {
	SpreadsheetID string
	Tab           string
	Range         string // optional A1 range override
}

// SheetsExportRequest is handed to the SheetsClient
type SheetsExportRequest struct {
	Sheet    SheetTarget
	Rows     []SheetRow
	ClearTab bool
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab,omitempty" jsonschema:"Target tab name"`
	WrittenRows   int       `json:"written_rows" jsonschema:"How many rows were written"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message       string    `json:"message,omitempty" jsonschema:"Optional status message"`
}

// SheetsClient writes rows to a spreadsheet
type SheetsClient interface {
	Export(ctx context.Context, req SheetsExportRequest) (SheetsExportResult, error)
}

// ExportParams defines the arguments for jobs_export
type ExportParams struct {
	SessionID     string `json:"session_id" jsonschema:"Browse session whose displayed jobs are exported"`
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, defaults to Sheet1"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
}

type exportTool struct {
	sessions Sessions
	client   SheetsClient
	logger   *logging.Logger
}

// WithSheetsExport registers jobs_export. A nil client skips registration.
func WithSheetsExport(sessions Sessions, client SheetsClient) Option {
	return func(reg *registry) {
		if client == nil {
			reg.logger.Info("sheets client not configured, jobs_export disabled")
			return
		}

		t := exportTool{sessions: sessions, client: client, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_export",
			Description: "Export the jobs currently displayed in a browsing session to Google Sheets",
		}, t.handle)
	}
}

func (t exportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params ExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("spreadsheet_id is required")
	}
	l, ok := t.sessions.List(params.SessionID)
	if !ok {
		return nil, nil, fmt.Errorf("unknown session_id %q, call jobs_open first", params.SessionID)
	}

	snap := l.Snapshot()
	if snap.Status != fetch.Success {
		return nil, nil, fmt.Errorf("nothing displayed to export, session status is %s", snap.Status)
	}

	rows := SheetRows(job.NewCardViews(snap.Jobs))
	result, err := t.client.Export(ctx, SheetsExportRequest{
		Sheet:    SheetTarget{SpreadsheetID: params.SpreadsheetID, Tab: params.Tab},
		Rows:     rows,
		ClearTab: params.ClearTab,
	})
	if err != nil {
		t.logger.Error("jobs_export: export failed", "session_id", params.SessionID, "rows", len(rows), "err", err)
		return nil, nil, fmt.Errorf("failed to export: %w", err)
	}

	t.logger.Info("jobs_export completed", "session_id", params.SessionID, "written_rows", result.WrittenRows)

	msg := fmt.Sprintf("[jobs_export] %s", result.Message)
	return textResult(msg), result, nil
}

// SheetRows maps cards to rows, keeping order
func SheetRows(cards []job.CardView) []SheetRow {
	rows := make([]SheetRow, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, SheetRow{
			ID:             c.ID,
			Title:          c.Title,
			EmploymentType: c.EmploymentType,
			Location:       c.Location,
			Package:        c.Package,
			Rating:         strconv.FormatFloat(c.Rating, 'f', -1, 64),
		})
	}
	return rows
}
