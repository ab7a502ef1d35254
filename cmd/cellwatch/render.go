package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"cellwatch/internal/exporter"
	"cellwatch/pkg/contracts/domain"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	anomalousStyle = cellStyle.Foreground(lipgloss.Color("#C0392B"))
	mutedStyle     = lipgloss.NewStyle().Faint(true)
)

// renderTable writes headers and rows as a bordered table. Rows for which
// highlight returns true are coloured.
func renderTable(out io.Writer, headers []string, rows [][]string, highlight func(row int) bool) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case highlight != nil && highlight(row):
				return anomalousStyle
			default:
				return cellStyle
			}
		})
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

func renderTitle(out io.Writer, title string, count int) error {
	_, err := fmt.Fprintf(out, "\n%s %s\n", titleStyle.Render(title), mutedStyle.Render(fmt.Sprintf("(%d)", count)))
	return err
}

// renderRecords prints every record of a kind, anomalous rows highlighted
func renderRecords(out io.Writer, kind domain.Kind, recs []domain.Record) error {
	return renderSection(out, kind.Title(), kind, recs)
}

func renderSection(out io.Writer, title string, kind domain.Kind, recs []domain.Record) error {
	if err := renderTitle(out, title, len(recs)); err != nil {
		return err
	}
	if len(recs) == 0 {
		_, err := fmt.Fprintln(out, mutedStyle.Render("no rows"))
		return err
	}
	headers, rows := exporter.RecordTable(kind, recs)
	return renderTable(out, headers, rows, func(row int) bool {
		return row >= 0 && row < len(recs) && recs[row].Anomalous()
	})
}

func renderCellReport(out io.Writer, report domain.CellReport) error {
	radio := make([][]string, len(report.Radio))
	for i, c := range report.Radio {
		radio[i] = []string{c.RefCell, c.VSWR, c.Radio, c.Board, c.RF, c.Source}
	}
	links := make([][]string, len(report.Links))
	for i, c := range report.Links {
		links[i] = []string{c.RefCells, c.DlLoss, c.UlLoss, c.Length, c.Source}
	}
	transport := make([][]string, len(report.Transport))
	for i, c := range report.Transport {
		transport[i] = []string{c.RefCells, c.Board, c.TXdBm, c.RXdBm, c.WL, c.Source}
	}

	tables := []struct {
		title   string
		headers []string
		rows    [][]string
	}{
		{"Radio", []string{"Ref Cell", "VSWR (RL)", "Radio", "Board", "RF", "Source"}, radio},
		{"Links", []string{"Ref Cells", "DL Loss", "UL Loss", "Length", "Source"}, links},
		{"Transport", []string{"Ref Cells", "Board", "TX dBm", "RX dBm", "WL", "Source"}, transport},
	}
	for _, tbl := range tables {
		if err := renderTitle(out, tbl.title, len(tbl.rows)); err != nil {
			return err
		}
		if len(tbl.rows) == 0 {
			fmt.Fprintln(out, mutedStyle.Render("no rows"))
			continue
		}
		if err := renderTable(out, tbl.headers, tbl.rows, nil); err != nil {
			return err
		}
	}

	if err := renderSection(out, domain.KindMfar.Title(), domain.KindMfar, domain.Records(report.Mfar)); err != nil {
		return err
	}
	return renderSection(out, domain.KindMfitr.Title(), domain.KindMfitr, domain.Records(report.Mfitr))
}

func renderSummary(out io.Writer, summary domain.Summary) error {
	rows := make([][]string, len(summary.Sections))
	for i, s := range summary.Sections {
		rows[i] = []string{s.Title, strconv.Itoa(s.Total), strconv.Itoa(s.Anomalous)}
	}
	if err := renderTitle(out, "Summary", len(summary.Documents)); err != nil {
		return err
	}
	return renderTable(out, []string{"Section", "Rows", "Anomalous"}, rows, func(row int) bool {
		return summary.Sections[row].Anomalous > 0
	})
}

func renderDocuments(out io.Writer, docs []domain.DocumentInfo) error {
	rows := make([][]string, len(docs))
	for i, d := range docs {
		rows[i] = []string{d.Name, humanize.Bytes(uint64(d.Size))}
	}
	if err := renderTitle(out, "Documents", len(docs)); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, mutedStyle.Render("no documents"))
		return err
	}
	return renderTable(out, []string{"Name", "Size"}, rows, nil)
}
