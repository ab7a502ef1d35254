package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ExportFormats lists the file formats the exporter can write
var ExportFormats = []string{"csv", "xlsx"}

// FileValidator provides the file checks shared by the CLI commands
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateDocumentsDir checks that dir exists and is a directory and returns
// how many documents with one of the given extensions it holds. An empty
// directory is not an error.
func (v *FileValidator) ValidateDocumentsDir(dir string, extensions []string) (int, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Error("Documents directory does not exist",
			slog.String("directory", dir))
		return 0, fmt.Errorf("documents directory %s does not exist", dir)
	}
	if err != nil {
		v.logger.Error("Failed to stat documents directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		v.logger.Error("Documents path is not a directory",
			slog.String("path", dir))
		return 0, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	count := 0
	for _, e := range entries {
		if e.Type().IsRegular() && hasExtension(e.Name(), extensions) {
			count++
		}
	}

	if count == 0 {
		v.logger.Warn("No documents found",
			slog.String("directory", dir),
			slog.String("extensions", strings.Join(extensions, ",")))
		return 0, nil
	}
	v.logger.Debug("Documents directory validated",
		slog.String("directory", dir),
		slog.Int("documents", count))
	return count, nil
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return fmt.Errorf("file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()
	return nil
}

// ValidateExportPath checks an export destination: its extension must match
// format and its directory must be writable.
func (v *FileValidator) ValidateExportPath(path, format string) error {
	format = strings.ToLower(format)
	if !slices.Contains(ExportFormats, format) {
		return fmt.Errorf("unsupported export format %q (want one of %s)", format, strings.Join(ExportFormats, ", "))
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != format {
		return fmt.Errorf("file %s does not match export format %s", path, format)
	}
	return v.ValidateOutputDirectory(filepath.Dir(path))
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
