// Package app wires the cellwatch components together and manages the
// server lifecycle.
//
// # Initialization Flow
//
//	1. Load configuration (defaults, YAML file, CELLWATCH_* environment)
//	2. Initialize logging and OpenTelemetry
//	3. Resolve and create the data directories
//	4. Create the document store, the cell extractor and the services
//	5. Set up middleware and handlers
//	6. Start the HTTP server; shut down gracefully on SIGINT/SIGTERM
//
// # Usage
//
//	application, err := app.NewApplication(configFile)
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx)
//
// CLI commands that only read reports use New and Reports, then Close.
package app
