package dataprocessing

import (
	"strings"

	"cellwatch/pkg/contracts/domain"
)

const fruRadioArity = 10

// fruRadioHeader is the header as printed; exported column names are shortened
var fruRadioHeader = []string{
	"FRU", "LNH", "BOARD", "RF", "BP", "TX (W/dBm)", "VSWR (RL)", "RX (dBm)",
	"UEs/gUEs", "Sector/AntennaGroup/Cells (State:CellIds:PCIs)",
}

// FruRadio is the "FRU radio metrics" section. The last column lists
// sector cells and may itself contain ';', so rows are split into at most 10 fields.
var FruRadio = &Section[domain.FruRadioRecord]{
	kind: domain.KindFruRadio,
	locator: locator{
		header: columns(fruRadioHeader...),
		stops: []matcher{
			wordPrefix("CELL", "SC", "FRU", "BOARD"),
			columnPrefix("ID", "LINK", "RiL"),
			columnPrefix("ID", "RiL", "BOARD"),
			columnPrefix("BOARD", "LNH", "PORT"),
		},
		delimiter: ";",
	},
	newTokenizer: func() tokenizer[domain.FruRadioRecord] { return lineFunc[domain.FruRadioRecord](tokenizeFruRadio) },
	classify:     classifyFruRadio,
	display:      displayFruRadio,
}

func tokenizeFruRadio(line string) (domain.FruRadioRecord, bool) {
	p := splitTrimmed(strings.TrimSpace(line), ";", fruRadioArity)
	for len(p) > 0 && p[0] == "" {
		p = p[1:]
	}
	p = pad(p, fruRadioArity)

	r := domain.FruRadioRecord{
		FRU: p[0], LNH: p[1], Board: p[2], RF: p[3], BP: p[4],
		TX: p[5], VSWR: p[6], RX: p[7], UEs: p[8], SectorCells: p[9],
	}
	r.VSWRValue, r.RLValue = parseVSWR(r.VSWR)
	r.HighVSWR = classifyFruRadio(r)
	return r, true
}

// parseVSWR splits a "VSWR (RL)" value such as "1.8(12.3)" into its
// magnitude and the first number found inside the parentheses.
func parseVSWR(s string) (vswr, rl domain.Measure) {
	vswr = ParseMeasure(s)
	rl = domain.Missing()

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return vswr, rl
	}
	inner, _, found := strings.Cut(s[open+1:], ")")
	if !found || inner == "" {
		return vswr, rl
	}
	for i := range inner {
		if leadingNumber(inner[i:]) != "" {
			return vswr, ParseMeasure(inner[i:])
		}
	}
	return vswr, rl
}
