package dataprocessing

import (
	"log/slog"
	"strings"
	"unicode"

	"cellwatch/pkg/contracts/domain"
)

const (
	mfarMinTokens        = 15
	mfarMinSalvageFields = 12
)

// Mfar is the antenna feeder supervision section printed by the mfar
// command. The terminal wraps long rows, so a logical row may span
// several physical lines and ends with its "Passed"/"Failed" verdict.
var Mfar = &Section[domain.MfarRecord]{
	kind: domain.KindMfar,
	locator: locator{
		header: fragments("SC SE Tx/Rx", "RfPort1-RfPort2", "Cell(State)",
			"Samples", "Med", "Mean", "SDev", "Pol", "Res", "Issue"),
		stops: []matcher{
			textPrefix("Total:"),
			columnPrefix("ID", "LINK", "RiL"),
			columnPrefix("FRU", "LNH"),
			wordPrefix("CELL", "SC", "FRU", "BOARD"),
		},
	},
	newTokenizer: func() tokenizer[domain.MfarRecord] { return &mfarAssembler{} },
	classify:     classifyMfar,
	display:      classifyMfar,
}

// mfarAssembler joins wrapped physical lines into one logical row
type mfarAssembler struct {
	buf string
}

func (a *mfarAssembler) feed(line string) []domain.MfarRecord {
	var out []domain.MfarRecord
	switch {
	case isMfarRowStart(line):
		if strings.TrimSpace(a.buf) != "" {
			if r, ok := salvageMfar(a.buf); ok {
				out = append(out, r)
			}
		}
		a.buf = line
	case a.buf == "":
		// continuation without a row start
		return nil
	default:
		a.buf += " " + line
	}

	if hasVerdict(a.buf) {
		if r, ok := tokenizeMfar(a.buf); ok {
			out = append(out, r)
		}
		a.buf = ""
	}
	return out
}

func (a *mfarAssembler) reset() {
	if strings.TrimSpace(a.buf) != "" {
		slog.Debug("mfar row discarded", slog.String("reason", "unterminated"), slog.String("row", a.buf))
	}
	a.buf = ""
}

// isMfarRowStart matches "<n>/<n> <digit>...", e.g. "2/4 0 ..."
func isMfarRowStart(line string) bool {
	f := strings.Fields(line)
	if len(f) < 2 || !isDigit(f[1][0]) {
		return false
	}
	num, den, ok := strings.Cut(f[0], "/")
	return ok && allDigits(num) && allDigits(den)
}

func hasVerdict(buf string) bool {
	for _, w := range splitWords(buf) {
		if strings.EqualFold(w, "passed") || strings.EqualFold(w, "failed") {
			return true
		}
	}
	return false
}

// tokenizeMfar maps a terminated row. BrPair and CellState are printed as
// two tokens each and are joined back with a single space.
func tokenizeMfar(buf string) (domain.MfarRecord, bool) {
	f := strings.Fields(buf)
	if len(f) < 2 {
		return domain.MfarRecord{}, false
	}
	t := f[2:]
	if len(t) < mfarMinTokens {
		slog.Debug("mfar row discarded", slog.String("reason", "too few tokens"), slog.Int("tokens", len(t)))
		return domain.MfarRecord{}, false
	}
	r := domain.MfarRecord{
		SC:        f[0],
		SE:        f[1],
		TxRx:      t[0],
		BrPair:    t[1] + " " + t[2],
		RfPort1:   t[3],
		RfPort2:   t[4],
		HW:        t[5],
		Serial:    t[6],
		CellState: t[7] + " " + t[8],
		Samples:   t[9],
		Med:       t[10],
		Mean:      t[11],
		SDev:      t[12],
		Pol:       t[13],
		Res:       t[14],
		Issue:     strings.Join(t[15:], " "),
	}
	r.HasIssue = classifyMfar(r)
	return r, true
}

// salvageMfar reads an unterminated row whose columns are still separated
// by at least two spaces: SC SE, then one field per wide gap.
func salvageMfar(buf string) (domain.MfarRecord, bool) {
	sc, rest := cutToken(strings.TrimLeftFunc(buf, unicode.IsSpace))
	se, rest := cutToken(strings.TrimLeftFunc(rest, unicode.IsSpace))
	if sc == "" || se == "" || leadingSpaces(rest) < 2 {
		slog.Debug("mfar row discarded", slog.String("reason", "unterminated"), slog.String("row", buf))
		return domain.MfarRecord{}, false
	}
	p := splitWide(rest)
	if len(p) < mfarMinSalvageFields {
		slog.Debug("mfar row discarded", slog.String("reason", "incomplete"), slog.Int("fields", len(p)))
		return domain.MfarRecord{}, false
	}
	issue := ""
	if len(p) > 13 {
		issue = strings.Join(p[13:], " ")
	}
	p = pad(p, 13)
	r := domain.MfarRecord{
		SC: sc, SE: se,
		TxRx: p[0], BrPair: p[1], RfPort1: p[2], RfPort2: p[3], HW: p[4], Serial: p[5],
		CellState: p[6], Samples: p[7], Med: p[8], Mean: p[9], SDev: p[10], Pol: p[11], Res: p[12],
		Issue: issue,
	}
	r.HasIssue = classifyMfar(r)
	return r, true
}

// cutToken splits s at its first whitespace
func cutToken(s string) (token, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func leadingSpaces(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// splitWide splits s on runs of two or more whitespace characters,
// dropping empty fields
func splitWide(s string) []string {
	var out []string
	var cur strings.Builder
	gap := 0
	flush := func() {
		if f := strings.TrimSpace(cur.String()); f != "" {
			out = append(out, f)
		}
		cur.Reset()
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			gap++
			if gap == 2 {
				flush()
			}
			if gap >= 2 {
				continue
			}
		} else {
			gap = 0
		}
		cur.WriteRune(r)
	}
	flush()
	return out
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
