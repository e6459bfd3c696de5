package leavehistory

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	ExportSheet       = "Riwayat Cuti"
	ExportFilename    = "riwayat-cuti.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportXLSX writes the rows of view as a workbook with the same columns as
// the HTML table. An empty view produces a header-only sheet.
func ExportXLSX(w io.Writer, view HistoryView) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(ExportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := make([]any, len(view.Columns))
	for i, c := range view.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range view.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := exportRow(r, view.IsHRD)
		if err := f.SetSheetRow(ExportSheet, cell, &values); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func exportRow(r Row, withEmployee bool) []any {
	reason := r.Reason
	if r.RejectionNote != "" {
		reason += "\n" + r.RejectionNote
	}

	values := []any{r.StartLabel + " s/d " + r.EndLabel}
	if withEmployee {
		values = append(values, r.EmployeeName)
	}
	return append(values, r.LeaveType, r.DurationLabel, reason, r.Status)
}
