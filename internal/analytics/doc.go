// Package analytics computes the observational report over a finalized
// listing table: structural summary, descriptive statistics per numeric
// column, a pairwise-complete Pearson correlation matrix, and histogram
// series. Nothing in this package mutates the table.
//
// Rendering here is plain text only. Chart rendering (the correlation
// heatmap, the log-scaled price histogram) belongs to an external
// presentation collaborator; this package supplies the matrix and series
// data it consumes.
package analytics
