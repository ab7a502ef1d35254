package dataprocessing

import (
	"strings"

	"cellwatch/pkg/contracts/domain"
)

const boardSfpArity = 17

// BoardSfp is the "board SFP metrics" section: 17 ';' separated columns
var BoardSfp = &Section[domain.BoardSfpRecord]{
	kind: domain.KindBoardSfp,
	locator: locator{
		header: columns(domain.BoardSfpColumns...),
		stops: []matcher{
			columnPrefix("ID", "T", "RiL"),
			columnPrefix("ID", "LINK", "RiL"),
			columnPrefix("BOARD", "LNH", "PORT"),
			columnPrefix("Prio", "ST", "syncRefType"),
			columnPrefix("XPBOARD", "ST"),
			textPrefix("AntennaNearUnit"),
		},
		delimiter: ";",
	},
	newTokenizer: func() tokenizer[domain.BoardSfpRecord] { return lineFunc[domain.BoardSfpRecord](tokenizeBoardSfp) },
	classify:     classifyBoardSfp,
	display:      classifyBoardSfp,
}

// tokenizeBoardSfp discards short rows and ignores columns past the 17th
func tokenizeBoardSfp(line string) (domain.BoardSfpRecord, bool) {
	p := splitTrimmed(strings.TrimSpace(line), ";", -1)
	if len(p) < boardSfpArity {
		return domain.BoardSfpRecord{}, false
	}
	r := domain.BoardSfpRecord{
		ID: p[0], RiL: p[1], Board: p[2], SFPLNH: p[3], Port: p[4],
		Vendor: p[5], VendorProd: p[6], Rev: p[7], Serial: p[8], Date: p[9], EricssonProd: p[10],
		WL: p[11], Temp: p[12], TXbs: p[13], TXdBm: p[14], RXdBm: p[15], BER: p[16],
	}
	r.TXdBmValue = ParseMeasure(r.TXdBm)
	r.RXdBmValue = ParseMeasure(r.RXdBm)
	r.LowPower = classifyBoardSfp(r)
	return r, true
}
