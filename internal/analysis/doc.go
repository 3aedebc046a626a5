// Package analysis computes the statistical products of the pipeline:
// grouped descriptive summaries, year-over-year trend deltas, ranked category
// comparisons with cumulative shares, and outlier detection by IQR or
// standard-score rules. Every operation is a pure transformation over an
// input table; undefined statistics are NaN rather than errors.
package analysis
