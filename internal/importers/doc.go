// Package importers normalizes credential-manager exports into canonical records.
//
// # Architecture
//
//	Export text → Parse (format dispatch) → provider normalizer → NewRecord → []entities.Record
//
// Each provider has a JSON and a CSV normalizer. JSON normalizers take a
// gjson tree, CSV normalizers take raw text and tokenize it themselves. Both
// read every source item into a flat view struct first, so each optional
// field has exactly one place where its default is decided, and then hand
// the view to a derive function looked up by the item's type discriminator.
//
// The normalizers are pure: no I/O, no shared state, one record per source
// item or row, in source order. Only two conditions are errors: an unknown
// file type (ErrUnsupportedFormat) and JSON text that does not parse
// (MalformedJSONError). Everything else degrades to empty values.
//
// # Known fidelity limits
//
//   - ProtonPass CSV identities are read from the JSON object stored in the
//     note column. If that text is not a JSON object the record is still
//     produced, with every identity field empty.
//   - ProtonPass CSV has no pin column, so those records are never favorites.
//   - ProtonPass CSV uses the raw vault cell as the folder while the JSON
//     path uses the vault's display name.
//
// # Example Usage
//
//	records, err := importers.ParseBitwarden(text, importers.FormatJSON)
//
//	// Through the pipeline, with an exporter
//	pipeline := importers.NewPipeline(exporters.NewJSONExporter(os.Stdout, true))
//	result, err := pipeline.Import(importers.NewProtonPassConverter(text, importers.FormatCSV))
package importers
