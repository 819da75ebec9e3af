// Package table implements the in-memory listing table the analysis pipeline
// operates on: an ordered sequence of rows over named columns, where every
// cell is either a typed value (string, number, date) or an explicit
// undefined marker.
//
// The undefined marker represents "present in the source but not
// interpretable as the target type" and is distinct from a column being
// absent from the table entirely. Coercions and derived computations
// substitute the marker instead of failing, so a single bad cell never takes
// down a row or the run.
package table
