package exporter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellwatch/pkg/contracts/domain"
)

func sampleLinkPerf() []domain.Record {
	return []domain.Record{
		domain.LinkPerfRecord{
			ID: "1", Link: "L-1", DlLoss: "-4.0", UlLoss: "n/a", TT: "CS0AE101, CS0AN101",
			DlLossValue: -4, UlLossValue: domain.Missing(), LowLoss: true,
			Provenance: domain.Provenance{Source: "site_a.txt"},
		},
		domain.LinkPerfRecord{
			ID: "2", Link: "L-2", DlLoss: "-1,0", UlLoss: "-1,0",
			DlLossValue: -1, UlLossValue: -1,
			Provenance: domain.Provenance{Source: "site_a.txt"},
		},
	}
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, utf8BOM), "missing UTF-8 BOM")
	rows, err := csv.NewReader(bytes.NewReader(data[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteRecordsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecordsCSV(&buf, domain.KindLinkPerf, sampleLinkPerf()))

	rows := readCSV(t, buf.Bytes())
	require.Len(t, rows, 3)

	header := rows[0]
	require.Len(t, header, len(domain.LinkPerfColumns)+4)
	assert.Equal(t, domain.LinkPerfColumns, header[:len(domain.LinkPerfColumns)])
	assert.Equal(t, []string{"DlLossValue", "UlLossValue", "Anomalous", "Source"}, header[len(domain.LinkPerfColumns):])

	first := rows[1]
	require.Len(t, first, len(header))
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "CS0AE101, CS0AN101", first[18], "commas survive quoting")
	assert.Equal(t, []string{"-4", "", "true", "site_a.txt"}, first[19:], "missing value written as empty cell")

	assert.Equal(t, []string{"-1", "-1", "false", "site_a.txt"}, rows[2][19:])
}

func TestWriteRecordsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecordsCSV(&buf, domain.KindMfar, nil))

	rows := readCSV(t, buf.Bytes())
	require.Len(t, rows, 1)
	assert.Equal(t, append(append([]string{}, domain.MfarColumns...), "Anomalous", "Source"), rows[0])
}

func TestRecordTable(t *testing.T) {
	tests := []struct {
		name        string
		kind        domain.Kind
		rec         domain.Record
		wantColumns int
		wantTail    []string
	}{
		{
			name:        "board sfp",
			kind:        domain.KindBoardSfp,
			rec:         domain.BoardSfpRecord{ID: "TN", TXdBmValue: -15.2, RXdBmValue: -3, LowPower: true, Provenance: domain.Provenance{Source: "b.log"}},
			wantColumns: len(domain.BoardSfpColumns) + 4,
			wantTail:    []string{"-15.2", "-3", "true", "b.log"},
		},
		{
			name:        "fru radio without return loss",
			kind:        domain.KindFruRadio,
			rec:         domain.FruRadioRecord{VSWR: "1.8", VSWRValue: 1.8, RLValue: domain.Missing(), HighVSWR: true},
			wantColumns: len(domain.FruRadioColumns) + 4,
			wantTail:    []string{"1.8", "", "true", ""},
		},
		{
			name:        "mfitr",
			kind:        domain.KindMfitr,
			rec:         domain.MfitrRecord{Delta: "0.4", DeltaValue: 0.4},
			wantColumns: len(domain.MfitrColumns) + 3,
			wantTail:    []string{"0.4", "false", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, rows := RecordTable(tt.kind, []domain.Record{tt.rec})
			require.Len(t, headers, tt.wantColumns)
			require.Len(t, rows, 1)
			require.Len(t, rows[0], tt.wantColumns)
			assert.Equal(t, tt.wantTail, rows[0][len(rows[0])-len(tt.wantTail):])
		})
	}
}

func TestRecordTableDoesNotAliasColumns(t *testing.T) {
	headers, _ := RecordTable(domain.KindMfitr, nil)
	headers[0] = "changed"
	assert.Equal(t, "CELL", domain.MfitrColumns[0])
}
