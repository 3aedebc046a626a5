// Package dataset defines the in-memory tabular model shared by every
// pipeline stage: a Table of ordered rows over uniquely named columns, whose
// cells are numbers, text, or missing. Pipeline stages never mutate a table
// they received; each stage derives a new one.
package dataset
