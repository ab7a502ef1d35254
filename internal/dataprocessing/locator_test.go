package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cellwatch/pkg/contracts/domain"
)

func TestMatchers(t *testing.T) {
	linkHeader := columns(domain.LinkPerfColumns...)
	sfpStop := columnPrefix("ID", "T", "RiL")
	cellWords := wordPrefix("CELL", "SC", "FRU", "BOARD")
	mfitrHeader := allWords("CELL", "SC", "FRU", "BOARD", "PUSCH", "PUCCH", "DELTA")
	mfarHeader := Mfar.locator.header

	tests := []struct {
		name string
		m    matcher
		line string
		want bool
	}{
		{"columns exact", linkHeader, "ID;LINK;RiL;WL1;TEMP1;TXbs1;TXdBm1;RXdBm1;BER1;WL2;TEMP2;TXbs2;TXdBm2;RXdBm2;BER2;DlLoss;UlLoss;LENGTH;TT", true},
		{"columns spaced lower case", linkHeader, "id ; link;ril;wl1;temp1;txbs1;txdbm1;rxdbm1;ber1;wl2;temp2;txbs2;txdbm2;rxdbm2;ber2;dlloss;ulloss;length;tt", true},
		{"columns extra field", linkHeader, "ID;LINK;RiL;WL1;TEMP1;TXbs1;TXdBm1;RXdBm1;BER1;WL2;TEMP2;TXbs2;TXdBm2;RXdBm2;BER2;DlLoss;UlLoss;LENGTH;TT;X", false},
		{"columns different field", linkHeader, "ID;LINK;RiL;VENDOR1;TEMP1;TXbs1;TXdBm1;RXdBm1;BER1;WL2;TEMP2;TXbs2;TXdBm2;RXdBm2;BER2;DlLoss;UlLoss;LENGTH;TT", false},
		{"fru header with inner spaces", columns(fruRadioHeader...), "FRU;LNH;BOARD;RF;BP;TX(W/dBm);VSWR (RL);RX  (dBm);UEs/gUEs;Sector/AntennaGroup/Cells (State:CellIds:PCIs)", true},
		{"column prefix", sfpStop, "ID;T;RiL;ST;X", true},
		{"column prefix spaced", sfpStop, "id ; t ; RiLs", true},
		{"column prefix mismatch", sfpStop, "ID;TX;RiL", false},
		{"column prefix too short", sfpStop, "ID;T", false},
		{"word prefix", cellWords, "CELL   SC  FRU BOARD PUSCH", true},
		{"word prefix lower", cellWords, "cell sc fru board", true},
		{"word prefix partial", cellWords, "CELL SC FRU", false},
		{"all words", mfitrHeader, "CELL  SC  FRU   BOARD   PUSCH PUCCH  A B C D DELTA", true},
		{"all words whole only", mfitrHeader, "CELLS SC FRU BOARD PUSCH PUCCH DELTA", false},
		{"fragments", mfarHeader, "SC SE Tx/Rx BrPair RfPort1-RfPort2 HW Serial Cell (State) Samples Med Mean SDev Pol Res Issue", true},
		{"fragments spaced dash", mfarHeader, "SC  SE  Tx/Rx  BrPair  RfPort1 - RfPort2  HW  Serial  Cell(State)  Samples  Med  Mean  SDev  Pol  Res  Issue", true},
		{"fragments missing issue", mfarHeader, "SC SE Tx/Rx BrPair RfPort1-RfPort2 HW Serial Cell (State) Samples Med Mean SDev Pol Res", false},
		{"text prefix", textPrefix("Output has been logged"), "output has been logged to /tmp/x.log", true},
		{"leading word", leadingWord("Bye"), "Bye", true},
		{"leading word punctuated", leadingWord("Bye"), "bye.", true},
		{"leading word longer", leadingWord("Bye"), "Byebye", false},
		{"node prompt", nodePrompt, "CSNODE01> lt all", true},
		{"node prompt no command", nodePrompt, "CSNODE01>", false},
		{"node prompt no name", nodePrompt, "CS> lt", false},
		{"node prompt no space", nodePrompt, "CSNODE01>lt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m(tt.line))
		})
	}
}

func TestIsSeparator(t *testing.T) {
	assert.True(t, isSeparator("==="))
	assert.True(t, isSeparator("-----------"))
	assert.False(t, isSeparator("=="))
	assert.False(t, isSeparator("=-="))
	assert.False(t, isSeparator("--- x"))
	assert.False(t, isSeparator("-3.5"))
}

func TestLocatorNext(t *testing.T) {
	loc := locator{
		header:    columnPrefix("A", "B"),
		stops:     []matcher{textPrefix("END")},
		delimiter: ";",
	}

	tests := []struct {
		name      string
		from      state
		line      string
		wantState state
		wantAct   action
	}{
		{"outside ignores rows", outside, "1;2", outside, skipLine},
		{"outside ignores stop", outside, "END", outside, skipLine},
		{"header enters", outside, "  A;B  ", inside, enterSection},
		{"blank ignored", inside, "   ", inside, skipLine},
		{"separator ignored", inside, "=====", inside, skipLine},
		{"stop leaves", inside, "END of listing", outside, leaveSection},
		{"header again restarts", inside, "A;B", inside, restartSection},
		{"missing delimiter ignored", inside, "no separator here", inside, skipLine},
		{"row forwarded", inside, "1;2", inside, recordLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, act := loc.next(tt.from, tt.line)
			assert.Equal(t, tt.wantState, st)
			assert.Equal(t, tt.wantAct, act)
		})
	}
}
