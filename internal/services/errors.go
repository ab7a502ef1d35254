package services

import (
	apperrors "cellwatch/internal/errors"
)

// Report service errors. They are typed application errors, so the HTTP
// error handler maps them to problem responses.
var (
	ErrUnknownKind       = apperrors.NewAppValidationError("unknown section kind")
	ErrDocumentNotFound  = apperrors.NewNotFoundError("document")
	ErrUnsupportedFormat = apperrors.NewAppValidationError("unsupported export format")
	ErrUnsupportedTarget = apperrors.NewAppValidationError("unsupported export target")
	ErrDocumentsUnlisted = apperrors.NewStorageError("document listing failed", nil)
)
