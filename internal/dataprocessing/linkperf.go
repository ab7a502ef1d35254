package dataprocessing

import (
	"strings"

	"cellwatch/pkg/contracts/domain"
)

const linkPerfArity = 19

// LinkPerf is the "link performance WL" section: 19 ';' separated columns
var LinkPerf = &Section[domain.LinkPerfRecord]{
	kind: domain.KindLinkPerf,
	locator: locator{
		header: columns(domain.LinkPerfColumns...),
		stops: []matcher{
			columnPrefix("ID", "T", "RiL"),
			columnPrefix("ID", "LINK", "RiL", "VENDOR1"),
			columnPrefix("ID", "RiL", "BOARD", "SFPLNH"),
			columnPrefix("BOARD", "LNH", "PORT"),
			columnPrefix("Prio", "ST", "syncRefType"),
			columnPrefix("XPBOARD", "ST"),
			textPrefix("AntennaNearUnit"),
		},
		delimiter: ";",
	},
	newTokenizer: func() tokenizer[domain.LinkPerfRecord] { return lineFunc[domain.LinkPerfRecord](tokenizeLinkPerf) },
	classify:     classifyLinkPerf,
	display:      displayLinkPerf,
}

// tokenizeLinkPerf normalizes a row to 19 fields. Exports from some nodes
// carry an empty LINK column, or put the link state where RiL belongs;
// both shift the row right by one, undone by dropping column 1 once.
func tokenizeLinkPerf(line string) (domain.LinkPerfRecord, bool) {
	parts := splitTrimmed(strings.TrimSpace(line), ";", -1)
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) >= linkPerfArity && (parts[1] == "" || isLinkState(parts[2])) {
		parts = append(parts[:1], parts[2:]...)
	}
	if len(parts) > linkPerfArity {
		tail := strings.Join(parts[linkPerfArity-1:], ";")
		parts = append(parts[:linkPerfArity-1], tail)
	}
	parts = pad(parts, linkPerfArity)

	r := domain.LinkPerfRecord{
		ID: parts[0], Link: parts[1], RiL: parts[2],
		WL1: parts[3], Temp1: parts[4], TXbs1: parts[5], TXdBm1: parts[6], RXdBm1: parts[7], BER1: parts[8],
		WL2: parts[9], Temp2: parts[10], TXbs2: parts[11], TXdBm2: parts[12], RXdBm2: parts[13], BER2: parts[14],
		DlLoss: parts[15], UlLoss: parts[16], Length: parts[17], TT: parts[18],
	}
	r.DlLossValue = ParseMeasure(r.DlLoss)
	r.UlLossValue = ParseMeasure(r.UlLoss)
	r.LowLoss = classifyLinkPerf(r)
	return r, true
}

func isLinkState(s string) bool {
	switch strings.ToLower(s) {
	case "up", "down", "dn":
		return true
	}
	return false
}

// splitTrimmed splits s like strings.SplitN and trims every field
func splitTrimmed(s, sep string, n int) []string {
	parts := strings.SplitN(s, sep, n)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// pad extends parts with empty fields up to n
func pad(parts []string, n int) []string {
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts
}
