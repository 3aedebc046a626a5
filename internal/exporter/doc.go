// Package exporter writes tabular artifacts as CSV files: descriptive
// summaries, trend analyses, category comparisons, and full cleaned tables.
// Files carry a UTF-8 BOM so spreadsheet applications open them correctly.
package exporter
