package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cellwatch/pkg/contracts/domain"
)

// sheet is one worksheet worth of rows
type sheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

// WriteAnomalyWorkbook writes the anomaly report as one sheet per kind
func WriteAnomalyWorkbook(out io.Writer, report domain.AnomalyReport) error {
	sections := report.Sections()
	sheets := make([]sheet, 0, len(sections))
	for _, sec := range sections {
		sheets = append(sheets, recordSheet(sec.Kind, sec.Records))
	}
	return writeWorkbook(out, sheets)
}

// WriteRecordsWorkbook writes the records of one kind to a single sheet
func WriteRecordsWorkbook(out io.Writer, kind domain.Kind, recs []domain.Record) error {
	return writeWorkbook(out, []sheet{recordSheet(kind, recs)})
}

// WriteCellWorkbook writes the cell report: the radio, link and transport
// projections followed by the MFAR and MFITR rows
func WriteCellWorkbook(out io.Writer, report domain.CellReport) error {
	radio := sheet{name: "Radio", headers: []string{"RefCell", "VSWR", "Radio", "Board", "RF", "Source"}}
	for _, c := range report.Radio {
		radio.rows = append(radio.rows, []interface{}{c.RefCell, c.VSWR, c.Radio, c.Board, c.RF, c.Source})
	}
	links := sheet{name: "Links", headers: []string{"RefCells", "DlLoss", "UlLoss", "Length", "Source"}}
	for _, c := range report.Links {
		links.rows = append(links.rows, []interface{}{c.RefCells, c.DlLoss, c.UlLoss, c.Length, c.Source})
	}
	transport := sheet{name: "Transport", headers: []string{"RefCells", "Board", "TXdBm", "RXdBm", "WL", "Source"}}
	for _, c := range report.Transport {
		transport.rows = append(transport.rows, []interface{}{c.RefCells, c.Board, c.TXdBm, c.RXdBm, c.WL, c.Source})
	}

	return writeWorkbook(out, []sheet{
		radio,
		links,
		transport,
		recordSheet(domain.KindMfar, domain.Records(report.Mfar)),
		recordSheet(domain.KindMfitr, domain.Records(report.Mfitr)),
	})
}

func recordSheet(kind domain.Kind, recs []domain.Record) sheet {
	s := sheet{
		name:    kind.Title(),
		headers: append(append(columnsOf(kind), measureNames(kind)...), "Anomalous", "Source"),
	}
	for _, r := range recs {
		row := make([]interface{}, 0, len(s.headers))
		for _, f := range r.Fields() {
			row = append(row, f)
		}
		for _, m := range measures(r) {
			if m.Valid() {
				row = append(row, m.Float64())
			} else {
				row = append(row, "")
			}
		}
		row = append(row, r.Anomalous(), r.SourceName())
		s.rows = append(s.rows, row)
	}
	return s
}

func writeWorkbook(out io.Writer, sheets []sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", s.name, err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
		if err := fillSheet(f, s, bold); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func fillSheet(f *excelize.File, s sheet, headerStyle int) error {
	header := make([]interface{}, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", s.name, err)
	}
	if err := f.SetRowStyle(s.name, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", s.name, err)
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", s.name, i+1, err)
		}
	}

	return f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
