// Package pipeline implements the four-stage listing analysis flow: load a
// CSV or Excel export into a raw table, clean and type-coerce it, and derive
// auxiliary columns. The stages are pure over the table and run strictly in
// sequence; reporting and filtering live in their own packages and consume
// the finalized table.
//
// Typical flow:
//
//	t, err := pipeline.Load(ctx, "afternic_auctions.csv")
//	if err != nil {
//	    // FILE_ACCESS / PARSING errors are fatal at this stage
//	}
//	t = pipeline.Clean(ctx, t)
//	t = pipeline.NewDeriver().Derive(ctx, t)
//
// Cell-level failures (an unparseable date, a price with stray text) never
// abort the run: they degrade to the undefined marker and the row either
// survives with gaps or is dropped by the cleaner's required-field checks.
package pipeline
