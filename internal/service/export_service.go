package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	apperr "github.com/MobeenM17/SuswearGProject/pkg/errors"
)

// ErrExportGenerateFail workbook could not be written
var ErrExportGenerateFail = apperr.New(apperr.Internal, "failed to generate report file")

const (
	summarySheet   = "Summary"
	breakdownSheet = "Donations"
)

// ═══════════════════════════════════════════════════════════
// Export: impact report as xlsx
// ═══════════════════════════════════════════════════════════
//
// Layout:
//   - "Summary": scope, donor, totals
//   - "Donations": one row per counted donation with its factors
//
// Exporting never writes the metrics row.

func (s *reportService) Export(ctx context.Context, donorEmail string) (*bytes.Buffer, string, error) {
	donorEmail = strings.TrimSpace(donorEmail)

	report, err := s.compute(ctx, s.repo, donorEmail)
	if err != nil {
		if !errors.Is(err, ErrDonorNotFound) {
			s.logger.Error("failed to compute report for export", zap.Error(err))
		}
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E7D32"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// summary
	generated := s.now().UTC().Format("2006-01-02 15:04 MST")
	summary := [][2]interface{}{
		{"Scope", report.Scope},
		{"Generated", generated},
		{"Total donations", report.TotalDonations},
		{"CO2 saved (kg)", report.TotalCO2},
		{"Landfill saved (kg)", report.LandfillSavedKG},
	}
	if report.Scope == ScopeDonor {
		summary = append(summary, [2]interface{}{"Donor", report.Donor}, [2]interface{}{"Email", report.Email})
	}
	f.SetColWidth(summarySheet, "A", "A", 22)
	f.SetColWidth(summarySheet, "B", "B", 32)
	for i, kv := range summary {
		f.SetCellValue(summarySheet, cell("A", i+1), kv[0])
		f.SetCellValue(summarySheet, cell("B", i+1), kv[1])
	}
	f.SetCellStyle(summarySheet, "A1", cell("A", len(summary)), headerStyle)

	// breakdown
	headers := []string{"Donation ID", "Description", "Category", "CO2 saved (kg)", "Landfill saved (kg)"}
	for i, h := range headers {
		f.SetCellValue(breakdownSheet, cell(colName(i), 1), h)
	}
	f.SetCellStyle(breakdownSheet, "A1", cell(colName(len(headers)-1), 1), headerStyle)
	f.SetColWidth(breakdownSheet, "A", "A", 12)
	f.SetColWidth(breakdownSheet, "B", "B", 40)
	f.SetColWidth(breakdownSheet, "C", "E", 20)

	for i, d := range report.Donations {
		row := i + 2
		f.SetCellValue(breakdownSheet, cell("A", row), d.DonationID)
		f.SetCellValue(breakdownSheet, cell("B", row), d.Description)
		f.SetCellValue(breakdownSheet, cell("C", row), d.Type)
		f.SetCellValue(breakdownSheet, cell("D", row), d.CO2Saved)
		f.SetCellValue(breakdownSheet, cell("E", row), d.Landfill)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, exportFilename(report, s.now().UTC().Format("20060102")), nil
}

func exportFilename(report *dto.ReportResponse, date string) string {
	if report.Scope == ScopeDonor {
		local := report.Email
		if at := strings.IndexByte(local, '@'); at > 0 {
			local = local[:at]
		}
		local = strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
				return r
			}
			return '_'
		}, local)
		return fmt.Sprintf("impact_report_%s_%s.xlsx", local, date)
	}
	return fmt.Sprintf("impact_report_all_%s.xlsx", date)
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
