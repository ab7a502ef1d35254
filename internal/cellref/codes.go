package cellref

import (
	"strings"

	"cellwatch/pkg/contracts/domain"
)

const codePrefix = "CS0"

// pairs are the complementary cell families in priority order. The first
// pair with any code in the scanned text decides the result.
var pairs = [][2]string{
	{"AE", "AN"},
	{"FM", "FT"},
	{"AM", "AT"},
}

func isFamily(f string) bool {
	for _, p := range pairs {
		if f == p[0] || f == p[1] {
			return true
		}
	}
	return false
}

// Codes returns every cell code (CS0 + family + digits) found in text, in order
func Codes(text string) []string {
	var out []string
	for i := 0; i+len(codePrefix)+3 <= len(text); {
		end, ok := codeAt(text, i)
		if !ok {
			i++
			continue
		}
		out = append(out, text[i:end])
		i = end
	}
	return out
}

func codeAt(s string, i int) (int, bool) {
	if !strings.HasPrefix(s[i:], codePrefix) {
		return 0, false
	}
	j := i + len(codePrefix)
	if j+2 > len(s) || !isFamily(s[j:j+2]) {
		return 0, false
	}
	j += 2
	end := skipDigits(s, j)
	if end == j {
		return 0, false
	}
	return end, true
}

// Pair groups codes into the AB and CD sides: AB joins the first code of
// each family of the winning pair, CD the second ones.
func Pair(codes []string) domain.ReferenceCellSet {
	for _, p := range pairs {
		a := withFamily(codes, p[0])
		b := withFamily(codes, p[1])
		if len(a) == 0 && len(b) == 0 {
			continue
		}
		return domain.ReferenceCellSet{
			AB: join(nth(a, 0), nth(b, 0)),
			CD: join(nth(a, 1), nth(b, 1)),
		}
	}
	return domain.ReferenceCellSet{}
}

func withFamily(codes []string, family string) []string {
	var out []string
	for _, c := range codes {
		if strings.HasPrefix(c, codePrefix+family) {
			out = append(out, c)
		}
	}
	return out
}

func nth(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

func join(a, b string) string {
	if a != "" && b != "" {
		return a + "/" + b
	}
	return a + b
}

// SectorCell returns the cell a FRU serves, read from its sector cells
// column: the code after an "FDD=" marker when present, else the first code.
// Codes here are CS, digits, one or two upper case letters, digits.
func SectorCell(sectorCells string) string {
	for k := 0; k+3 <= len(sectorCells); k++ {
		if !strings.EqualFold(sectorCells[k:k+3], "FDD") {
			continue
		}
		j := skipSpaces(sectorCells, k+3)
		if j < len(sectorCells) && sectorCells[j] == '=' {
			j = skipSpaces(sectorCells, j+1)
			if end, ok := sectorCodeAt(sectorCells, j); ok {
				return sectorCells[j:end]
			}
		}
	}
	for i := 0; i+4 <= len(sectorCells); i++ {
		if end, ok := sectorCodeAt(sectorCells, i); ok {
			return sectorCells[i:end]
		}
	}
	return ""
}

func sectorCodeAt(s string, i int) (int, bool) {
	if !strings.HasPrefix(s[i:], "CS") {
		return 0, false
	}
	j := i + 2
	k := skipDigits(s, j)
	if k == j {
		return 0, false
	}
	letters := 0
	for k < len(s) && letters < 2 && s[k] >= 'A' && s[k] <= 'Z' {
		k++
		letters++
	}
	if letters == 0 {
		return 0, false
	}
	end := skipDigits(s, k)
	if end == k {
		return 0, false
	}
	return end, true
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
