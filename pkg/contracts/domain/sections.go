package domain

// LinkPerfColumns is the column order of the link performance (WL) section
var LinkPerfColumns = []string{
	"ID", "LINK", "RiL", "WL1", "TEMP1", "TXbs1", "TXdBm1", "RXdBm1", "BER1",
	"WL2", "TEMP2", "TXbs2", "TXdBm2", "RXdBm2", "BER2", "DlLoss", "UlLoss", "LENGTH", "TT",
}

// LinkPerfRecord is one row of the link performance section
type LinkPerfRecord struct {
	ID     string `json:"ID"`
	Link   string `json:"LINK"`
	RiL    string `json:"RiL"`
	WL1    string `json:"WL1"`
	Temp1  string `json:"TEMP1"`
	TXbs1  string `json:"TXbs1"`
	TXdBm1 string `json:"TXdBm1"`
	RXdBm1 string `json:"RXdBm1"`
	BER1   string `json:"BER1"`
	WL2    string `json:"WL2"`
	Temp2  string `json:"TEMP2"`
	TXbs2  string `json:"TXbs2"`
	TXdBm2 string `json:"TXdBm2"`
	RXdBm2 string `json:"RXdBm2"`
	BER2   string `json:"BER2"`
	DlLoss string `json:"DlLoss"`
	UlLoss string `json:"UlLoss"`
	Length string `json:"LENGTH"`
	TT     string `json:"TT"`

	DlLossValue Measure `json:"dlLossValue"`
	UlLossValue Measure `json:"ulLossValue"`
	LowLoss     bool    `json:"lowLoss"`

	Provenance
}

func (r LinkPerfRecord) Kind() Kind        { return KindLinkPerf }
func (r LinkPerfRecord) Anomalous() bool   { return r.LowLoss }
func (r LinkPerfRecord) Columns() []string { return LinkPerfColumns }

// WithSource returns a copy of r tagged with the given document
func (r LinkPerfRecord) WithSource(source string) LinkPerfRecord {
	r.Source = source
	return r
}

func (r LinkPerfRecord) Fields() []string {
	return []string{
		r.ID, r.Link, r.RiL, r.WL1, r.Temp1, r.TXbs1, r.TXdBm1, r.RXdBm1, r.BER1,
		r.WL2, r.Temp2, r.TXbs2, r.TXdBm2, r.RXdBm2, r.BER2, r.DlLoss, r.UlLoss, r.Length, r.TT,
	}
}

// BoardSfpColumns is the column order of the board SFP metrics section
var BoardSfpColumns = []string{
	"ID", "RiL", "BOARD", "SFPLNH", "PORT", "VENDOR", "VENDORPROD", "REV", "SERIAL",
	"DATE", "ERICSSONPROD", "WL", "TEMP", "TXbs", "TXdBm", "RXdBm", "BER",
}

// BoardSfpRecord is one row of the board SFP metrics section
type BoardSfpRecord struct {
	ID           string `json:"ID"`
	RiL          string `json:"RiL"`
	Board        string `json:"BOARD"`
	SFPLNH       string `json:"SFPLNH"`
	Port         string `json:"PORT"`
	Vendor       string `json:"VENDOR"`
	VendorProd   string `json:"VENDORPROD"`
	Rev          string `json:"REV"`
	Serial       string `json:"SERIAL"`
	Date         string `json:"DATE"`
	EricssonProd string `json:"ERICSSONPROD"`
	WL           string `json:"WL"`
	Temp         string `json:"TEMP"`
	TXbs         string `json:"TXbs"`
	TXdBm        string `json:"TXdBm"`
	RXdBm        string `json:"RXdBm"`
	BER          string `json:"BER"`

	TXdBmValue Measure `json:"txdBmValue"`
	RXdBmValue Measure `json:"rxdBmValue"`
	LowPower   bool    `json:"lowPower"`

	Provenance
}

func (r BoardSfpRecord) Kind() Kind        { return KindBoardSfp }
func (r BoardSfpRecord) Anomalous() bool   { return r.LowPower }
func (r BoardSfpRecord) Columns() []string { return BoardSfpColumns }

// WithSource returns a copy of r tagged with the given document
func (r BoardSfpRecord) WithSource(source string) BoardSfpRecord {
	r.Source = source
	return r
}

func (r BoardSfpRecord) Fields() []string {
	return []string{
		r.ID, r.RiL, r.Board, r.SFPLNH, r.Port, r.Vendor, r.VendorProd, r.Rev, r.Serial,
		r.Date, r.EricssonProd, r.WL, r.Temp, r.TXbs, r.TXdBm, r.RXdBm, r.BER,
	}
}

// FruRadioColumns is the column order of the FRU radio metrics section
var FruRadioColumns = []string{
	"FRU", "LNH", "BOARD", "RF", "BP", "TX", "VSWR", "RX", "UEs_gUEs", "SectorCells",
}

// FruRadioRecord is one row of the FRU radio metrics section
type FruRadioRecord struct {
	FRU         string `json:"FRU"`
	LNH         string `json:"LNH"`
	Board       string `json:"BOARD"`
	RF          string `json:"RF"`
	BP          string `json:"BP"`
	TX          string `json:"TX"`
	VSWR        string `json:"VSWR"`
	RX          string `json:"RX"`
	UEs         string `json:"UEs_gUEs"`
	SectorCells string `json:"SectorCells"`

	VSWRValue Measure `json:"vswrValue"`
	RLValue   Measure `json:"rlValue"`
	HighVSWR  bool    `json:"highVSWR"`

	Provenance
}

func (r FruRadioRecord) Kind() Kind        { return KindFruRadio }
func (r FruRadioRecord) Anomalous() bool   { return r.HighVSWR }
func (r FruRadioRecord) Columns() []string { return FruRadioColumns }

// WithSource returns a copy of r tagged with the given document
func (r FruRadioRecord) WithSource(source string) FruRadioRecord {
	r.Source = source
	return r
}

func (r FruRadioRecord) Fields() []string {
	return []string{r.FRU, r.LNH, r.Board, r.RF, r.BP, r.TX, r.VSWR, r.RX, r.UEs, r.SectorCells}
}

// MfitrColumns is the column order of the MFITR (interference) section
var MfitrColumns = []string{"CELL", "SC", "FRU", "BOARD", "PUSCH", "PUCCH", "A", "B", "C", "D", "DELTA"}

// MfitrRecord is one row of the MFITR section
type MfitrRecord struct {
	Cell  string `json:"CELL"`
	SC    string `json:"SC"`
	FRU   string `json:"FRU"`
	Board string `json:"BOARD"`
	PUSCH string `json:"PUSCH"`
	PUCCH string `json:"PUCCH"`
	A     string `json:"A"`
	B     string `json:"B"`
	C     string `json:"C"`
	D     string `json:"D"`
	Delta string `json:"DELTA"`

	DeltaValue Measure `json:"deltaValue"`
	HighDelta  bool    `json:"highDelta"`

	Provenance
}

func (r MfitrRecord) Kind() Kind        { return KindMfitr }
func (r MfitrRecord) Anomalous() bool   { return r.HighDelta }
func (r MfitrRecord) Columns() []string { return MfitrColumns }

// WithSource returns a copy of r tagged with the given document
func (r MfitrRecord) WithSource(source string) MfitrRecord {
	r.Source = source
	return r
}

func (r MfitrRecord) Fields() []string {
	return []string{r.Cell, r.SC, r.FRU, r.Board, r.PUSCH, r.PUCCH, r.A, r.B, r.C, r.D, r.Delta}
}

// MfarColumns is the column order of the MFAR (antenna feeder) section
var MfarColumns = []string{
	"SC", "SE", "TxRx", "BrPair", "RfPort1", "RfPort2", "HW", "Serial",
	"CellState", "Samples", "Med", "Mean", "SDev", "Pol", "Res", "Issue",
}

// MfarRecord is one reassembled row of the MFAR section
type MfarRecord struct {
	SC        string `json:"SC"`
	SE        string `json:"SE"`
	TxRx      string `json:"TxRx"`
	BrPair    string `json:"BrPair"`
	RfPort1   string `json:"RfPort1"`
	RfPort2   string `json:"RfPort2"`
	HW        string `json:"HW"`
	Serial    string `json:"Serial"`
	CellState string `json:"CellState"`
	Samples   string `json:"Samples"`
	Med       string `json:"Med"`
	Mean      string `json:"Mean"`
	SDev      string `json:"SDev"`
	Pol       string `json:"Pol"`
	Res       string `json:"Res"`
	Issue     string `json:"Issue"`

	HasIssue bool `json:"hasIssue"`

	Provenance
}

func (r MfarRecord) Kind() Kind        { return KindMfar }
func (r MfarRecord) Anomalous() bool   { return r.HasIssue }
func (r MfarRecord) Columns() []string { return MfarColumns }

// WithSource returns a copy of r tagged with the given document
func (r MfarRecord) WithSource(source string) MfarRecord {
	r.Source = source
	return r
}

func (r MfarRecord) Fields() []string {
	return []string{
		r.SC, r.SE, r.TxRx, r.BrPair, r.RfPort1, r.RfPort2, r.HW, r.Serial,
		r.CellState, r.Samples, r.Med, r.Mean, r.SDev, r.Pol, r.Res, r.Issue,
	}
}
