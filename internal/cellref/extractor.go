package cellref

import (
	"strings"

	"cellwatch/pkg/contracts/domain"
)

// Fallback derives cells for transport rows whose text carries no cell code
type Fallback interface {
	Cells(source, ril string) (domain.ReferenceCellSet, bool)
}

// LegacyRiLFallback reads the sector number from the RiL column
// ("S3-1" or "Radio-S3-1") of documents exported from AT sites and
// returns the AE/AN pair of that sector.
type LegacyRiLFallback struct{}

func (LegacyRiLFallback) Cells(source, ril string) (domain.ReferenceCellSet, bool) {
	if !strings.Contains(strings.ToUpper(source), "AT") {
		return domain.ReferenceCellSet{}, false
	}
	n, ok := sectorNumber(ril)
	if !ok {
		return domain.ReferenceCellSet{}, false
	}
	return domain.ReferenceCellSet{AB: codePrefix + "AE" + n + "/" + codePrefix + "AN" + n}, true
}

// sectorNumber finds the first S<n>-<m> in s and returns n
func sectorNumber(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != 'S' && s[i] != 's' {
			continue
		}
		n := skipDigits(s, i+1)
		if n == i+1 || n >= len(s) || s[n] != '-' {
			continue
		}
		if skipDigits(s, n+1) == n+1 {
			continue
		}
		return s[i+1 : n], true
	}
	return "", false
}

// Extractor derives the reference cells of a record
type Extractor struct {
	fallback Fallback
}

// NewExtractor creates an extractor. A nil fallback disables it.
func NewExtractor(fallback Fallback) *Extractor {
	return &Extractor{fallback: fallback}
}

// Extract returns the cells affected by r. Records without a recognizable
// cell return the empty set.
func (e *Extractor) Extract(r domain.Record) domain.ReferenceCellSet {
	switch rec := r.(type) {
	case domain.LinkPerfRecord:
		return e.withFallback(Pair(Codes(strings.Join([]string{rec.TT, rec.WL1, rec.WL2, rec.Link}, " "))), rec.Source, rec.RiL)
	case domain.BoardSfpRecord:
		return e.withFallback(Pair(Codes(rec.WL)), rec.Source, rec.RiL)
	case domain.FruRadioRecord:
		return domain.ReferenceCellSet{AB: SectorCell(rec.SectorCells)}
	case domain.MfitrRecord:
		return Pair(Codes(rec.Cell))
	case domain.MfarRecord:
		return Pair(Codes(rec.CellState))
	default:
		return domain.ReferenceCellSet{}
	}
}

func (e *Extractor) withFallback(found domain.ReferenceCellSet, source, ril string) domain.ReferenceCellSet {
	if !found.Empty() || e.fallback == nil {
		return found
	}
	if cells, ok := e.fallback.Cells(source, ril); ok {
		return cells
	}
	return found
}
