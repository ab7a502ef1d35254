// Package config provides centralized configuration management for cellwatch.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (config.yaml, configs/config.yaml or $CELLWATCH_CONFIG)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CELLWATCH_<SECTION>_<FIELD>:
//
//	CELLWATCH_SERVER_PORT=8080
//	CELLWATCH_PATHS_DOCUMENTS_DIR=/srv/exports
//	CELLWATCH_CORPUS_WORKERS=8
//	CELLWATCH_CORPUS_LEGACY_CELL_FALLBACK=false
//	CELLWATCH_LOGGING_LEVEL=debug
//
// # Path Management
//
// ResolvePaths turns the configured directories into absolute paths:
//
//	paths, err := config.ResolvePaths(cfg.Paths)
//	doc := paths.GetDocumentPath("site_a.txt")
//
// # Validation
//
// Every field carries a go-playground/validator tag; Load fails with the
// list of offending fields.
package config
