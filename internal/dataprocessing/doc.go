// Package dataprocessing extracts typed records from network element CLI
// exports. A single export concatenates several report sections; each
// section kind is located, tokenized and classified independently.
//
// # Architecture
//
// Every section kind is described by a Section value:
//
//  1. Locator: a two-state scanner (outside/inside) that finds the section
//     header and its stop lines, skipping blanks and separator rules
//  2. Tokenizer: turns candidate lines into fixed-arity records, applying
//     the kind's shift, pad and merge corrections
//  3. Classifier: computes the anomaly flag at parse time and the display
//     filter used by reports
//
// The five sections are LinkPerf, BoardSfp, FruRadio, Mfitr and Mfar.
//
// # Usage
//
// Parsing a document held in memory:
//
//	rows := dataprocessing.LinkPerf.Parse(text)
//	for _, r := range rows {
//	    if r.LowLoss { ... }
//	}
//
// Parsing every stored document:
//
//	agg := dataprocessing.NewAggregator(store, dataprocessing.WithWorkers(4))
//	rows := dataprocessing.Aggregate(ctx, agg, dataprocessing.BoardSfp, "")
//
// # Error Handling
//
// Parsing never fails. Malformed lines are skipped, unparseable numbers
// become domain.Missing() and unreadable documents contribute no records.
package dataprocessing
