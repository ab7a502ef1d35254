package domain

// Record is one structured row extracted from a section of a document
type Record interface {
	Kind() Kind
	// SourceName is the provenance: the document the row was read from
	SourceName() string
	// Anomalous is the flag computed when the row was parsed
	Anomalous() bool
	// Columns returns the positional column names of the kind
	Columns() []string
	// Fields returns the positional field values, len(Fields()) == len(Columns())
	Fields() []string
}

// Provenance tags a record with its source document
type Provenance struct {
	Source string `json:"source,omitempty"`
}

// SourceName returns the source document identifier
func (p Provenance) SourceName() string {
	return p.Source
}

// Document is the raw text of one export together with its identifier
type Document struct {
	Name string `json:"name"`
	Text string `json:"-"`
}

// DocumentInfo describes a stored document without its content
type DocumentInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
