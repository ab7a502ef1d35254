package dataprocessing

import (
	"context"
	"log/slog"
	"strings"

	"cellwatch/pkg/contracts/domain"
)

// Record is the constraint satisfied by every section row type
type Record[R any] interface {
	domain.Record
	WithSource(source string) R
}

// DocumentStore is the storage collaborator the parsers read from
type DocumentStore interface {
	// ListDocuments returns the document names in lexicographic order
	ListDocuments(ctx context.Context) ([]string, error)
	// ReadDocument returns the decoded text of one document
	ReadDocument(ctx context.Context, name string) (string, error)
}

// tokenizer turns candidate lines into records. Stateful tokenizers
// (multi-line records) drop any partial record on reset.
type tokenizer[R any] interface {
	feed(line string) []R
	reset()
}

// lineFunc is a tokenizer for kinds where one physical line is one record
type lineFunc[R any] func(line string) (R, bool)

func (f lineFunc[R]) feed(line string) []R {
	if r, ok := f(line); ok {
		return []R{r}
	}
	return nil
}

func (lineFunc[R]) reset() {}

// Section describes how one section kind is located, tokenized and classified
type Section[R Record[R]] struct {
	kind         domain.Kind
	locator      locator
	newTokenizer func() tokenizer[R]
	classify     func(R) bool
	display      func(R) bool
}

// Kind returns the section kind
func (s *Section[R]) Kind() domain.Kind {
	return s.kind
}

// Parse extracts every record of the section kind from text. Each call owns
// its own locator state and tokenizer, so Parse is safe for concurrent use.
func (s *Section[R]) Parse(text string) []R {
	tok := s.newTokenizer()
	st := outside
	var out []R
	for _, raw := range splitLines(text) {
		var act action
		st, act = s.locator.next(st, raw)
		switch act {
		case enterSection:
			slog.Debug("section entered", slog.String("kind", string(s.kind)))
			tok.reset()
		case restartSection, leaveSection:
			tok.reset()
		case recordLine:
			out = append(out, tok.feed(strings.TrimRight(raw, " \t\r"))...)
		}
	}
	tok.reset()
	return out
}

// ParseFile parses one stored document and tags each record with its name.
// A read failure yields no records.
func (s *Section[R]) ParseFile(ctx context.Context, store DocumentStore, name string) []R {
	recs, err := s.parseStored(ctx, store, name)
	if err != nil {
		slog.WarnContext(ctx, "document read failed",
			slog.String("document", name),
			slog.String("kind", string(s.kind)),
			slog.String("error", err.Error()))
		return nil
	}
	return recs
}

func (s *Section[R]) parseStored(ctx context.Context, store DocumentStore, name string) ([]R, error) {
	text, err := store.ReadDocument(ctx, name)
	if err != nil {
		return nil, err
	}
	recs := s.Parse(text)
	for i := range recs {
		recs[i] = recs[i].WithSource(name)
	}
	return recs, nil
}

// Classify returns the flag computed at parse time
func (s *Section[R]) Classify(r R) bool {
	return s.classify(r)
}

// Display reports whether r passes the presentation filter of the kind
func (s *Section[R]) Display(r R) bool {
	return s.display(r)
}

// Filter returns the records passing Display, in order
func (s *Section[R]) Filter(recs []R) []R {
	out := make([]R, 0, len(recs))
	for _, r := range recs {
		if s.display(r) {
			out = append(out, r)
		}
	}
	return out
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
