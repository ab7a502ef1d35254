package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleExport is a CLI export holding every section kind. Each section has
// two rows of which the first is anomalous and displayed.
var SampleExport = strings.Join([]string{
	"CSNODE01> lt all",
	"ID;LINK;RiL;WL1;TEMP1;TXbs1;TXdBm1;RXdBm1;BER1;WL2;TEMP2;TXbs2;TXdBm2;RXdBm2;BER2;DlLoss;UlLoss;LENGTH;TT",
	"==========================================",
	"1;L-1;RiL-1;WL1;35;1;-2.1;-3.0;0;WL2;36;1;-2.2;-3.1;0;-4.0;-1.2;150;CS0AE101 CS0AN101",
	"2;L-2;RiL-2;WL1;35;1;-2.1;-3.0;0;WL2;36;1;-2.2;-3.1;0;-1,0;-1,0;90;",
	"",
	"ID;RiL;BOARD;SFPLNH;PORT;VENDOR;VENDORPROD;REV;SERIAL;DATE;ERICSSONPROD;WL;TEMP;TXbs;TXdBm;RXdBm;BER",
	"TN;RiL-1;BB-1;1;A;VEND;PROD;R1;SN1;2020-01-01;ERIC;CS0FM12;40;1;-15.2;-3.0;0",
	"TN;RiL-2;BB-1;2;B;VEND;PROD;R1;SN2;2020-01-01;ERIC;CS0FM13;40;1;-2.0;-3.0;0",
	"",
	"FRU;LNH;BOARD;RF;BP;TX (W/dBm);VSWR (RL);RX (dBm);UEs/gUEs;Sector/AntennaGroup/Cells (State:CellIds:PCIs)",
	"RRU-1;1;RRUS;A;0;20.0/43.0;1.8(12.3);-110.5;3/1;1/1/FDD=CS0FM12 (ENABLED:12:301)",
	"RRU-2;2;RRUS;B;0;20.0/43.0;1.1(20.1);-111.0;0/0;1/2/FDD=CS0FM13 (ENABLED:13:302)",
	"",
	"CSNODE01> mfitr",
	"CELL       SC  FRU        BOARD  PUSCH   PUCCH   A       B       C       D       DELTA",
	"=============================================",
	"CS0AE101   1   RRU-1      RRUS   -118.2  -119.0  -118.5  -118.9  -119.1  -118.7  4.2",
	"CS0AN101   2   RRU-2      RRUS   -120    -121    -120.5  -120.9  0.4",
	"Bye",
	"SC   SE  Tx/Rx  BrPair  RfPort1-RfPort2  HW      Serial  Cell(State)          Samples  Med     Mean    SDev  Pol  Res  Issue",
	"-----------------------------------------------",
	"2/4 1  RX   A B   RF3  RF4  RRUS12  SN124  CS0AN101 (ENABLED)  900  -100.1  -101.0  3.2  -45  HIGH  Failed VSWR",
	"2/4 0  TX   A B   RF1  RF2  RRUS12  SN123  CS0AE101 (ENABLED)",
	"       1200  -110.2  -110.5  0.8  +45  OK  Passed",
	"Total: 2 rows",
}, "\r\n")

// TransportExport holds a single anomalous BoardSfp row without a cell code
var TransportExport = strings.Join([]string{
	"ID;RiL;BOARD;SFPLNH;PORT;VENDOR;VENDORPROD;REV;SERIAL;DATE;ERICSSONPROD;WL;TEMP;TXbs;TXdBm;RXdBm;BER",
	"TN;S3-1;BB-2;1;A;VEND;PROD;R1;SN9;2021-05-01;ERIC;;41;1;-1.0;-16.5;0",
}, "\n")

// WriteCorpus writes files into a fresh temp directory and returns it
func WriteCorpus(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}

// SampleCorpus writes SampleExport as site_a.txt, TransportExport as
// site_b.log and a notes.md that is not a document
func SampleCorpus(t testing.TB) string {
	t.Helper()
	return WriteCorpus(t, map[string]string{
		"site_a.txt": SampleExport,
		"site_b.log": TransportExport,
		"notes.md":   "not an export",
	})
}
