package files

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cellwatch/pkg/contracts/domain"
)

// ErrInvalidName is returned for names that are not plain document file names
var ErrInvalidName = errors.New("invalid document name")

// Store is a directory of CLI export documents. Only regular files whose
// extension is in the configured list are documents.
type Store struct {
	dir        string
	extensions []string
	logger     *slog.Logger
}

// NewStore creates a store over dir. Extensions are matched
// case-insensitively and include the leading dot.
func NewStore(dir string, extensions []string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		exts = append(exts, strings.ToLower(e))
	}
	return &Store{
		dir:        dir,
		extensions: exts,
		logger:     logger.With(slog.String("component", "document_store")),
	}
}

// Dir returns the documents directory
func (s *Store) Dir() string {
	return s.dir
}

// IsDocument reports whether name has a document extension
func (s *Store) IsDocument(name string) bool {
	return slices.Contains(s.extensions, strings.ToLower(filepath.Ext(name)))
}

// ListDocuments returns the document names in lexicographic order
func (s *Store) ListDocuments(ctx context.Context) ([]string, error) {
	infos, err := s.Documents(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names, nil
}

// Documents returns name and size of every document, ordered by name
func (s *Store) Documents(ctx context.Context) ([]domain.DocumentInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", s.dir, err)
	}

	var docs []domain.DocumentInfo
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !s.IsDocument(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		docs = append(docs, domain.DocumentInfo{Name: entry.Name(), Size: info.Size()})
	}

	// os.ReadDir already sorts by name; keep the order explicit
	slices.SortFunc(docs, func(a, b domain.DocumentInfo) int {
		return strings.Compare(a.Name, b.Name)
	})

	s.logger.DebugContext(ctx, "documents listed",
		slog.String("directory", s.dir),
		slog.Int("count", len(docs)))
	return docs, nil
}

// ReadDocument returns the decoded text of the named document
func (s *Store) ReadDocument(ctx context.Context, name string) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", name, err)
	}
	return Decode(data), nil
}

// Path returns the absolute path of the named document. Names must be
// bare file names with a document extension.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !s.IsDocument(name) {
		return "", fmt.Errorf("%w: %q has no document extension", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}
