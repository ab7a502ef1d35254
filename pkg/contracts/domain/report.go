package domain

// AnomalyReport holds the display-filtered rows of every section kind
type AnomalyReport struct {
	LinkPerf []LinkPerfRecord `json:"linkPerf"`
	BoardSfp []BoardSfpRecord `json:"boardSfp"`
	FruRadio []FruRadioRecord `json:"fruRadio"`
	Mfar     []MfarRecord     `json:"mfar"`
	Mfitr    []MfitrRecord    `json:"mfitr"`
}

// SectionRows pairs a kind with its rows
type SectionRows struct {
	Kind    Kind
	Records []Record
}

// Sections returns the report rows per kind in report order
func (r AnomalyReport) Sections() []SectionRows {
	return []SectionRows{
		{Kind: KindLinkPerf, Records: Records(r.LinkPerf)},
		{Kind: KindBoardSfp, Records: Records(r.BoardSfp)},
		{Kind: KindFruRadio, Records: Records(r.FruRadio)},
		{Kind: KindMfar, Records: Records(r.Mfar)},
		{Kind: KindMfitr, Records: Records(r.Mfitr)},
	}
}

// Len returns the number of rows across all kinds
func (r AnomalyReport) Len() int {
	return len(r.LinkPerf) + len(r.BoardSfp) + len(r.FruRadio) + len(r.Mfar) + len(r.Mfitr)
}

// Records widens a typed row slice to []Record
func Records[R Record](in []R) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}

// RadioCell is a FRU radio row with a high VSWR, keyed by the cell it serves
type RadioCell struct {
	RefCell string `json:"refCell"`
	VSWR    string `json:"vswr"`
	Radio   string `json:"radio"`
	Board   string `json:"board"`
	RF      string `json:"rf"`
	Source  string `json:"source"`
}

// LinkCell is a link performance row with a low loss, keyed by its cells
type LinkCell struct {
	RefCells string `json:"refCells"`
	DlLoss   string `json:"dlLoss"`
	UlLoss   string `json:"ulLoss"`
	Length   string `json:"length"`
	Source   string `json:"source"`
}

// TransportCell is a low-power transport SFP row; RefCells may be empty
type TransportCell struct {
	RefCells string `json:"refCells"`
	Board    string `json:"board"`
	TXdBm    string `json:"txdBm"`
	RXdBm    string `json:"rxdBm"`
	WL       string `json:"wl"`
	Source   string `json:"source"`
}

// CellReport is the triage view of anomalies grouped by the cells they affect
type CellReport struct {
	Radio     []RadioCell     `json:"radio"`
	Links     []LinkCell      `json:"links"`
	Transport []TransportCell `json:"transport"`
	Mfar      []MfarRecord    `json:"mfar"`
	Mfitr     []MfitrRecord   `json:"mfitr"`
}

// SectionSummary counts the rows of one kind
type SectionSummary struct {
	Kind      Kind   `json:"kind"`
	Title     string `json:"title"`
	Total     int    `json:"total"`
	Anomalous int    `json:"anomalous"`
}

// Summary counts rows per kind over the selected documents
type Summary struct {
	Documents []string         `json:"documents"`
	Sections  []SectionSummary `json:"sections"`
}

// Section returns the counts of kind, or a zero summary
func (s Summary) Section(kind Kind) SectionSummary {
	for _, sec := range s.Sections {
		if sec.Kind == kind {
			return sec
		}
	}
	return SectionSummary{Kind: kind, Title: kind.Title()}
}
