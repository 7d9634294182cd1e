package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shreyescodes/doc-parser-updated/internal/repository"
)

// Service is a tiny façade over the detail repository that produces XLSX
// bytes for exports.
type Service struct {
	details repository.DetailRepository
	logger  *slog.Logger
}

func NewService(details repository.DetailRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{details: details, logger: logger}
}

// ExportCapitalCallsXLSX returns an XLSX workbook with one row per capital
// call detail record.
func (s *Service) ExportCapitalCallsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.details.ListCapitalCalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("query capital calls: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Capital Calls"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document ID",
		"Fund Name",
		"Call Date",
		"Due Date",
		"Call Amount",
		"Call %",
		"LP Name",
		"LP Commitment",
		"Remaining Commitment",
		"Payment Instructions",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.DocumentID.String())
		write(2, strOrEmpty(r.FundName))
		write(3, dateOrEmpty(r.CallDate))
		write(4, dateOrEmpty(r.DueDate))
		write(5, floatOrEmpty(r.CallAmount))
		write(6, floatOrEmpty(r.CallPercentage))
		write(7, strOrEmpty(r.LPName))
		write(8, floatOrEmpty(r.LPCommitment))
		write(9, floatOrEmpty(r.RemainingCommitment))
		write(10, truncate(strOrEmpty(r.PaymentInstructions), 140))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // uuid
	_ = f.SetColWidth(sheet, "B", "B", 28) // fund
	_ = f.SetColWidth(sheet, "C", "D", 14) // dates
	_ = f.SetColWidth(sheet, "E", "F", 14) // amounts
	_ = f.SetColWidth(sheet, "G", "G", 24) // lp
	_ = f.SetColWidth(sheet, "H", "I", 18)
	_ = f.SetColWidth(sheet, "J", "J", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"sheet", sheet,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportDistributionsXLSX returns an XLSX workbook with one row per
// distribution detail record.
func (s *Service) ExportDistributionsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.details.ListDistributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("query distributions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Distributions"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document ID",
		"Fund Name",
		"Distribution Date",
		"Record Date",
		"Distribution Amount",
		"Your Distribution",
		"Per Unit",
		"LP Name",
		"LP Units",
		"IRR",
		"Multiple",
		"Payment Method",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.DocumentID.String())
		write(2, strOrEmpty(r.FundName))
		write(3, dateOrEmpty(r.DistributionDate))
		write(4, dateOrEmpty(r.RecordDate))
		write(5, floatOrEmpty(r.DistributionAmount))
		write(6, floatOrEmpty(r.LPDistributionAmount))
		write(7, floatOrEmpty(r.DistributionPerUnit))
		write(8, strOrEmpty(r.LPName))
		write(9, floatOrEmpty(r.LPUnits))
		write(10, floatOrEmpty(r.IRR))
		write(11, floatOrEmpty(r.Multiple))
		write(12, strOrEmpty(r.PaymentMethod))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "D", 16)
	_ = f.SetColWidth(sheet, "E", "G", 16)
	_ = f.SetColWidth(sheet, "H", "H", 24)
	_ = f.SetColWidth(sheet, "I", "L", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"sheet", sheet,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func dateOrEmpty(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}

func floatOrEmpty(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
