// Package exporter writes parsed section records to spreadsheet formats.
//
// CSV exports carry a UTF-8 BOM so spreadsheet applications detect the
// encoding. Each row holds the positional columns of the kind, its derived
// numeric values (empty when the source text was not a number), the
// anomaly flag and the source document:
//
//	err := exporter.WriteRecordsCSV(w, domain.KindLinkPerf, records)
//
// XLSX workbooks are built with excelize: the anomaly report gets one sheet
// per section kind, the cell report one sheet per projection.
//
//	err := exporter.WriteAnomalyWorkbook(w, report)
package exporter
