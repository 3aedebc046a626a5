// Package dataprocessing loads NPRI release files into tables and prepares
// them for analysis: format dispatch by file extension, column name
// normalization, year coercion, empty-row dropping, and exact-match filtering
// by reporting year or province code.
package dataprocessing
