package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"cellwatch/pkg/contracts/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteTable writes headers and records as CSV to out
func WriteTable(out io.Writer, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := out.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)
	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteRecordsCSV writes the records of one kind with a UTF-8 BOM
func WriteRecordsCSV(out io.Writer, kind domain.Kind, recs []domain.Record) error {
	headers, rows := RecordTable(kind, recs)
	return WriteTable(out, WriteOptions{Headers: headers, Records: rows, BOMPrefix: true})
}

// RecordTable lays records out as rows: the positional columns of the kind,
// its derived numeric values (empty when missing), the anomaly flag and
// the source document.
func RecordTable(kind domain.Kind, recs []domain.Record) ([]string, [][]string) {
	headers := append(columnsOf(kind), measureNames(kind)...)
	headers = append(headers, "Anomalous", "Source")

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		row := append([]string{}, r.Fields()...)
		for _, m := range measures(r) {
			row = append(row, m.String())
		}
		row = append(row, strconv.FormatBool(r.Anomalous()), r.SourceName())
		rows = append(rows, row)
	}
	return headers, rows
}

func columnsOf(kind domain.Kind) []string {
	var cols []string
	switch kind {
	case domain.KindLinkPerf:
		cols = domain.LinkPerfColumns
	case domain.KindBoardSfp:
		cols = domain.BoardSfpColumns
	case domain.KindFruRadio:
		cols = domain.FruRadioColumns
	case domain.KindMfitr:
		cols = domain.MfitrColumns
	case domain.KindMfar:
		cols = domain.MfarColumns
	}
	return append([]string{}, cols...)
}

func measureNames(kind domain.Kind) []string {
	switch kind {
	case domain.KindLinkPerf:
		return []string{"DlLossValue", "UlLossValue"}
	case domain.KindBoardSfp:
		return []string{"TXdBmValue", "RXdBmValue"}
	case domain.KindFruRadio:
		return []string{"VSWRValue", "RLValue"}
	case domain.KindMfitr:
		return []string{"DeltaValue"}
	default:
		return nil
	}
}

func measures(r domain.Record) []domain.Measure {
	switch rec := r.(type) {
	case domain.LinkPerfRecord:
		return []domain.Measure{rec.DlLossValue, rec.UlLossValue}
	case domain.BoardSfpRecord:
		return []domain.Measure{rec.TXdBmValue, rec.RXdBmValue}
	case domain.FruRadioRecord:
		return []domain.Measure{rec.VSWRValue, rec.RLValue}
	case domain.MfitrRecord:
		return []domain.Measure{rec.DeltaValue}
	default:
		return nil
	}
}
