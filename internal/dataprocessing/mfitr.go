package dataprocessing

import (
	"strings"

	"cellwatch/pkg/contracts/domain"
)

const mfitrMinTokens = 9

// Mfitr is the uplink interference section printed by the mfitr command.
// Columns are separated by whitespace runs and the C/D columns are optional.
var Mfitr = &Section[domain.MfitrRecord]{
	kind: domain.KindMfitr,
	locator: locator{
		header: allWords("CELL", "SC", "FRU", "BOARD", "PUSCH", "PUCCH", "DELTA"),
		stops: []matcher{
			leadingWord("Bye"),
			textPrefix("Output has been logged"),
			nodePrompt,
		},
	},
	newTokenizer: func() tokenizer[domain.MfitrRecord] { return lineFunc[domain.MfitrRecord](tokenizeMfitr) },
	classify:     classifyMfitr,
	display:      classifyMfitr,
}

func tokenizeMfitr(line string) (domain.MfitrRecord, bool) {
	tok := strings.Fields(line)
	if len(tok) < mfitrMinTokens {
		return domain.MfitrRecord{}, false
	}
	rest := tok[6:]
	values := pad(append([]string(nil), rest[:len(rest)-1]...), 4)

	r := domain.MfitrRecord{
		Cell: tok[0], SC: tok[1], FRU: tok[2], Board: tok[3],
		PUSCH: tok[4], PUCCH: tok[5],
		A: values[0], B: values[1], C: values[2], D: values[3],
		Delta: rest[len(rest)-1],
	}
	r.DeltaValue = ParseMeasure(r.Delta)
	r.HighDelta = classifyMfitr(r)
	return r, true
}
