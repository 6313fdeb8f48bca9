package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	sheetsclient "github.com/honeycarbs/jobboard/pkg/sheets"
)

// sheetValues is the subset of the sheets client the exporter uses
type sheetValues interface {
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
}

var _ sheetValues = (*sheetsclient.Client)(nil)

type sheetsClientAdapter struct {
	client sheetValues
	clock  func() time.Time
}

func newSheetsClientAdapter(client sheetValues) *sheetsClientAdapter {
	return &sheetsClientAdapter{client: client, clock: time.Now}
}

// Export writes a header row and one row per job, replacing what was in
// the same range
func (a *sheetsClientAdapter) Export(ctx context.Context, req tools.SheetsExportRequest) (tools.SheetsExportResult, error) {
	result := tools.SheetsExportResult{
		SpreadsheetID: req.Sheet.SpreadsheetID,
		Tab:           tabOrDefault(req.Sheet.Tab),
	}

	if req.ClearTab {
		if err := a.client.ClearValues(ctx, req.Sheet.SpreadsheetID, buildClearRange(req.Sheet.Tab)); err != nil {
			return result, fmt.Errorf("sheets: failed to clear sheet: %w", err)
		}
	}

	values := convertRowsToValues(req.Rows)
	if err := a.client.UpdateValues(ctx, req.Sheet.SpreadsheetID, buildRange(req.Sheet), values); err != nil {
		return result, fmt.Errorf("sheets: failed to write rows: %w", err)
	}

	result.WrittenRows = len(req.Rows)
	result.CompletedAt = a.clock().UTC()
	if result.WrittenRows == 0 {
		result.Message = "no jobs displayed, wrote header only"
	} else {
		result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)
	}

	return result, nil
}

func tabOrDefault(tab string) string {
	if tab == "" {
		return "Sheet1"
	}
	return tab
}

func buildRange(target tools.SheetTarget) string {
	if target.Range != "" {
		return target.Range
	}
	return fmt.Sprintf("%s!A1", tabOrDefault(target.Tab))
}

func buildClearRange(tab string) string {
	return fmt.Sprintf("%s!A1:Z", tabOrDefault(tab))
}

func convertRowsToValues(rows []tools.SheetRow) [][]any {
	values := make([][]any, 0, len(rows)+1)

	header := make([]any, 0, len(tools.SheetHeader))
	for _, h := range tools.SheetHeader {
		header = append(header, h)
	}
	values = append(values, header)

	for _, row := range rows {
		values = append(values, []any{
			row.ID,
			row.Title,
			row.EmploymentType,
			row.Location,
			row.Package,
			row.Rating,
		})
	}
	return values
}
