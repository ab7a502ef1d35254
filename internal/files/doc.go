// Package files is the document store the section parsers read from: a
// directory of CLI export files filtered by extension.
//
//	store := files.NewStore(paths.DocumentsDir, cfg.Corpus.Extensions, logger)
//	names, err := store.ListDocuments(ctx)
//	text, err := store.ReadDocument(ctx, names[0])
//
// Store satisfies dataprocessing.DocumentStore. Decode handles byte order
// marks and legacy single-byte encodings.
package files
