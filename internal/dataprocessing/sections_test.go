package dataprocessing

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellwatch/pkg/contracts/domain"
)

var equateMissing = cmp.Comparer(func(a, b domain.Measure) bool {
	return a == b || (!a.Valid() && !b.Valid())
})

func row(fields ...string) string {
	return strings.Join(fields, ";")
}

func doc(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

var (
	linkPerfHeader = row(domain.LinkPerfColumns...)
	boardSfpHeader = row(domain.BoardSfpColumns...)
	fruHeaderLine  = row(fruRadioHeader...)
	mfitrHeaderRow = "CELL       SC  FRU        BOARD  PUSCH   PUCCH   A       B       C       D       DELTA"
	mfarHeaderRow  = "SC   SE  Tx/Rx  BrPair  RfPort1-RfPort2  HW      Serial  Cell(State)          Samples  Med     Mean    SDev  Pol  Res  Issue"
)

// linkRow builds a 19 field LinkPerf row with the given id, losses and TT
func linkRow(id, dl, ul, tt string) string {
	return row(id, "L-"+id, "RiL-"+id, "WL1", "35", "1", "-2.1", "-3.0", "0",
		"WL2", "36", "1", "-2.2", "-3.1", "0", dl, ul, "150", tt)
}

func TestLinkPerfParse(t *testing.T) {
	text := doc(
		"CSNODE01> lt all",
		"1;2;3",
		linkPerfHeader,
		"===================",
		linkRow("1", "-4.0", "-1.2", "CS0AE101 CS0AN101"),
		linkRow("2", "-3,495", "-1,0", ""),
		"",
		"garbage without delimiter",
		row("3", "", "L-3", "RiL-3", "WL1", "35", "1", "-2.1", "-3.0", "0", "WL2", "36", "1", "-2.2", "-3.1", "0", "-1", "-1", "150", "TT3"),
		row("4", "x", "Up", "RiL-4", "WL1", "35", "1", "-2.1", "-3.0", "0", "WL2", "36", "1", "-2.2", "-3.1", "0", "-1", "-1", "150", "TT4"),
		linkRow("5", "-1", "-1", "a")+";b;c",
		";"+linkRow("6", "-1", "-1", "TT6"),
		"7;L-7;RiL-7",
		"BOARD;LNH;PORT;X",
		linkRow("8", "-9", "-9", "ignored"),
		linkPerfHeader,
		linkRow("9", "", "abc", "TT9"),
	)

	rows := LinkPerf.Parse(text)
	require.Len(t, rows, 8)

	for _, r := range rows {
		assert.Len(t, r.Fields(), 19)
		assert.Len(t, r.Columns(), 19)
		assert.Empty(t, r.SourceName())
	}

	assert.Equal(t, "1", rows[0].ID)
	assert.InDelta(t, -4.0, rows[0].DlLossValue.Float64(), 1e-9)
	assert.True(t, rows[0].LowLoss)
	assert.True(t, LinkPerf.Classify(rows[0]))
	assert.True(t, LinkPerf.Display(rows[0]))

	// -3.495 is below the display threshold but not below the flag threshold
	assert.False(t, rows[1].LowLoss)
	assert.True(t, LinkPerf.Display(rows[1]))

	assert.Equal(t, "L-3", rows[2].Link)
	assert.Equal(t, "RiL-3", rows[2].RiL)
	assert.Equal(t, "TT3", rows[2].TT)

	assert.Equal(t, "Up", rows[3].Link)
	assert.Equal(t, "RiL-4", rows[3].RiL)
	assert.Equal(t, "TT4", rows[3].TT)

	assert.Equal(t, "a;b;c", rows[4].TT)
	assert.Equal(t, "6", rows[5].ID)
	assert.Equal(t, "TT6", rows[5].TT)

	assert.Equal(t, "RiL-7", rows[6].RiL)
	assert.Empty(t, rows[6].TT)
	assert.False(t, rows[6].DlLossValue.Valid())
	assert.False(t, rows[6].LowLoss)

	assert.Equal(t, "9", rows[7].ID)
	assert.False(t, rows[7].DlLossValue.Valid())
	assert.False(t, rows[7].UlLossValue.Valid())
	assert.False(t, rows[7].LowLoss)
}

func TestLinkPerfShiftOnExactArity(t *testing.T) {
	// 19 fields with an empty LINK: the row is shifted and padded back to 19
	line := row("1", "", "L-1", "RiL-1", "WL1", "35", "1", "-2.1", "-3.0", "0",
		"WL2", "36", "1", "-2.2", "-3.1", "0", "-4", "-1", "150")
	r, ok := tokenizeLinkPerf(line)
	require.True(t, ok)
	assert.Equal(t, "L-1", r.Link)
	assert.Equal(t, "-4", r.DlLoss)
	assert.Equal(t, "150", r.Length)
	assert.Empty(t, r.TT)
	assert.True(t, r.LowLoss)
	assert.Len(t, r.Fields(), 19)
}

func TestParseIsIdempotent(t *testing.T) {
	text := doc(linkPerfHeader, linkRow("1", "-4", "n/a", "TT"), linkRow("2", "", "", ""))

	first := LinkPerf.Parse(text)
	second := LinkPerf.Parse(text)
	if diff := cmp.Diff(first, second, equateMissing); diff != "" {
		t.Errorf("Parse not idempotent (-first +second):\n%s", diff)
	}
}

func TestParseNeverExceedsSectionLines(t *testing.T) {
	text := doc(
		"preamble",
		linkPerfHeader,
		linkRow("1", "-1", "-1", ""),
		"-----",
		"",
		linkRow("2", "-1", "-1", ""),
		"ID;T;RiL;X",
		linkRow("3", "-1", "-1", ""),
	)
	// two non-blank, non-separator lines between header and stop
	assert.LessOrEqual(t, len(LinkPerf.Parse(text)), 2)
}

func sfpRow(id, tx, rx, wl string) string {
	return row(id, "RiL-1", "BB-1", "1", "A", "VEND", "PROD", "R1", "SN1", "2020-01-01", "ERIC", wl, "40", "1", tx, rx, "0")
}

func TestBoardSfpParse(t *testing.T) {
	text := doc(
		boardSfpHeader,
		sfpRow("TN", "-15,2", "-3.0", "CS0FM12"),
		sfpRow(" tn ", "-3", "-14.5", ""),
		sfpRow("XX", "-20", "-20", ""),
		sfpRow("TN", "-13.99", "-3", ""),
		"TN;too;short",
		sfpRow("TN", "-1", "-1", "")+";extra;columns",
		"AntennaNearUnit;1",
		sfpRow("TN", "-20", "-20", ""),
	)

	rows := BoardSfp.Parse(text)
	require.Len(t, rows, 5)

	assert.True(t, rows[0].LowPower)
	assert.InDelta(t, -15.2, rows[0].TXdBmValue.Float64(), 1e-9)
	assert.Equal(t, "CS0FM12", rows[0].WL)

	assert.Equal(t, "tn", rows[1].ID)
	assert.True(t, rows[1].LowPower)

	assert.False(t, rows[2].LowPower, "only transport node rows are flagged")
	assert.False(t, rows[3].LowPower, "threshold is strict")

	assert.Equal(t, "0", rows[4].BER)
	assert.Len(t, rows[4].Fields(), 17)

	for _, r := range rows {
		assert.Equal(t, r.LowPower, BoardSfp.Display(r))
	}
}

func TestFruRadioParse(t *testing.T) {
	text := doc(
		fruHeaderLine,
		"----------",
		row("RRU-1", "1", "RRUS", "A", "0", "20.0/43.0", "1.8(12.3)", "-110.5", "3/1", "1/1/FDD=CS0FM12 (ENABLED:12:301)", "tail"),
		";RRU-2;2;RRUS;B;0;20;1.2",
		row("RRU-3", "3", "RRUS", "C", "0", "20", "1,6 (10,1)", "-111", "0", ""),
		row("RRU-4", "4", "RRUS", "D", "0", "20", "1.495", "-111", "0", ""),
		"CELL SC FRU BOARD PUSCH PUCCH DELTA",
		row("RRU-5", "5", "RRUS", "E", "0", "20", "3.0", "-111", "0", ""),
	)

	rows := FruRadio.Parse(text)
	require.Len(t, rows, 4)

	assert.Equal(t, "RRU-1", rows[0].FRU)
	assert.Equal(t, "1/1/FDD=CS0FM12 (ENABLED:12:301);tail", rows[0].SectorCells)
	assert.InDelta(t, 1.8, rows[0].VSWRValue.Float64(), 1e-9)
	assert.InDelta(t, 12.3, rows[0].RLValue.Float64(), 1e-9)
	assert.True(t, rows[0].HighVSWR)

	assert.Equal(t, "RRU-2", rows[1].FRU)
	assert.Equal(t, "1.2", rows[1].VSWR)
	assert.Empty(t, rows[1].SectorCells)
	assert.False(t, rows[1].RLValue.Valid())
	assert.Len(t, rows[1].Fields(), 10)

	assert.InDelta(t, 1.6, rows[2].VSWRValue.Float64(), 1e-9)
	assert.InDelta(t, 10.1, rows[2].RLValue.Float64(), 1e-9)

	// between the two thresholds: displayed, not flagged
	assert.False(t, rows[3].HighVSWR)
	assert.True(t, FruRadio.Display(rows[3]))
}

func TestParseVSWR(t *testing.T) {
	tests := []struct {
		in       string
		vswr, rl float64
		vOK, rOK bool
	}{
		{"1.8(12.3)", 1.8, 12.3, true, true},
		{"1.8", 1.8, 0, true, false},
		{"", 0, 0, false, false},
		{"n/a (x)", 0, 0, false, false},
		{"1.3 (RL -14.2 dB)", 1.3, -14.2, true, true},
		{"1.3 (", 1.3, 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, rl := parseVSWR(tt.in)
			assert.Equal(t, tt.vOK, v.Valid())
			assert.Equal(t, tt.rOK, rl.Valid())
			if tt.vOK {
				assert.InDelta(t, tt.vswr, v.Float64(), 1e-9)
			}
			if tt.rOK {
				assert.InDelta(t, tt.rl, rl.Float64(), 1e-9)
			}
		})
	}
}

func TestMfitrParse(t *testing.T) {
	text := doc(
		"CSNODE01> mfitr",
		mfitrHeaderRow,
		"=============================================",
		"CS0AE101   1   RRU-1      RRUS   -118.2  -119.0  -118.5  -118.9  -119.1  -118.7  4.2",
		"CS0AN101   2   RRU-2      RRUS   -120    -121    -120.5  -120.9  0.4",
		"CS0AN102   2   RRU-2      RRUS   -120    -121    -120.5  0.4",
		"Bye",
		"CS0AE999   1   RRU-9      RRUS   -118.2  -119.0  -118.5  -118.9  9.9",
		mfitrHeaderRow,
		"CS0FM12    1   RRU-3      RRUS   -100    -101    -100.5  -100.9  -101.1  3,9",
		"CSNODE01> exit",
		"CS0FM13    1   RRU-3      RRUS   -100    -101    -100.5  -100.9  -101.1  7",
	)

	rows := Mfitr.Parse(text)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.MfitrRecord{
		Cell: "CS0AE101", SC: "1", FRU: "RRU-1", Board: "RRUS",
		PUSCH: "-118.2", PUCCH: "-119.0",
		A: "-118.5", B: "-118.9", C: "-119.1", D: "-118.7",
		Delta: "4.2", DeltaValue: 4.2, HighDelta: true,
	}, rows[0])

	assert.Equal(t, "-120.5", rows[1].A)
	assert.Equal(t, "-120.9", rows[1].B)
	assert.Empty(t, rows[1].C)
	assert.Empty(t, rows[1].D)
	assert.Equal(t, "0.4", rows[1].Delta)
	assert.False(t, rows[1].HighDelta)

	assert.Equal(t, "CS0FM12", rows[2].Cell)
	assert.False(t, rows[2].HighDelta, "3.9 is not above the threshold")
	assert.False(t, Mfitr.Display(rows[2]))
}

func TestMfarParse(t *testing.T) {
	text := doc(
		mfarHeaderRow,
		"-----------------------------------------------",
		"2/4 0  TX   A B   RF1  RF2  RRUS12  SN123  CS0AE101 (ENABLED)",
		"       1200  -110.2  -110.5  0.8  +45  OK  Passed",
		"2/4 1  RX   A B   RF3  RF4  RRUS12  SN124  CS0AN101 (ENABLED)  900  -100.1  -101.0  3.2  -45  HIGH  Failed VSWR",
		"3/4 0  TX  A1  RF1  RF2  RRUS12  SN9  CS0FM1(EN)  100  -90  -91  1.0  +45  OK",
		"3/4 1  TX   A B   RF1  RF2  RRUS12  SN10  CS0FM2 (ENABLED)",
		"       1200  -110.2  -110.5  0.8  Passed",
		"orphan continuation Failed",
		"4/4 0  TX   A B   RF1  RF2  RRUS12  SN11  CS0FM3 (ENABLED)",
		"Total: 5 rows",
		"4/4 1  TX   A B   RF1  RF2  RRUS12  SN12  CS0FM4 (ENABLED)  1  2  3  4  5  6  Failed",
		mfarHeaderRow,
		"5/4 0  TX   A B   RF1  RF2  RRUS12  SN13  CS0FM5 (ENABLED)",
	)

	rows := Mfar.Parse(text)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.MfarRecord{
		SC: "2/4", SE: "0", TxRx: "TX", BrPair: "A B", RfPort1: "RF1", RfPort2: "RF2",
		HW: "RRUS12", Serial: "SN123", CellState: "CS0AE101 (ENABLED)",
		Samples: "1200", Med: "-110.2", Mean: "-110.5", SDev: "0.8", Pol: "+45", Res: "OK",
		Issue: "Passed",
	}, rows[0])
	assert.False(t, Mfar.Classify(rows[0]))

	assert.Equal(t, "Failed VSWR", rows[1].Issue)
	assert.True(t, rows[1].HasIssue)
	assert.True(t, Mfar.Display(rows[1]))

	// salvaged from wide column gaps when the next row started
	assert.Equal(t, "3/4", rows[2].SC)
	assert.Equal(t, "A1", rows[2].BrPair)
	assert.Equal(t, "CS0FM1(EN)", rows[2].CellState)
	assert.Equal(t, "OK", rows[2].Res)
	assert.Empty(t, rows[2].Issue)
	assert.False(t, rows[2].HasIssue)
}

func TestMfarReassemblyTokenThreshold(t *testing.T) {
	fifteen := doc(
		mfarHeaderRow,
		"2/4 0  TX   A B   RF1  RF2  RRUS12  SN123  CS0AE101 (ENABLED)",
		"  1200  -110.2  -110.5  0.8  +45  Passed",
	)
	fourteen := doc(
		mfarHeaderRow,
		"2/4 0  TX   A B   RF1  RF2  RRUS12  SN123  CS0AE101 (ENABLED)",
		"  1200  -110.2  -110.5  0.8  Passed",
	)

	rows := Mfar.Parse(fifteen)
	require.Len(t, rows, 1)
	assert.Equal(t, "+45", rows[0].Pol)
	assert.Equal(t, "Passed", rows[0].Res)
	assert.Empty(t, rows[0].Issue)
	assert.False(t, rows[0].HasIssue)

	assert.Empty(t, Mfar.Parse(fourteen))
}

func TestSectionsAreIndependent(t *testing.T) {
	text := doc(
		linkPerfHeader,
		linkRow("1", "-4", "-4", ""),
		boardSfpHeader,
		sfpRow("TN", "-20", "-20", ""),
		fruHeaderLine,
		row("RRU-1", "1", "RRUS", "A", "0", "20", "2.0", "-110", "0", "FDD=CS0AE1"),
		mfitrHeaderRow,
		"CS0AE101   1   RRU-1      RRUS   -118.2  -119.0  -118.5  -118.9  5",
		"Bye",
	)

	assert.Len(t, LinkPerf.Parse(text), 1)
	assert.Len(t, BoardSfp.Parse(text), 1)
	assert.Len(t, FruRadio.Parse(text), 1)
	assert.Len(t, Mfitr.Parse(text), 1)
	assert.Empty(t, Mfar.Parse(text))
}
