package pipeline

import (
	"context"
	"log/slog"
	"math"
	"time"
	"unicode/utf8"

	"afcli/internal/table"
)

// Deriver appends computed columns to a cleaned listing table. The clock is
// injectable so domainAge is deterministic under a fixed reference date.
type Deriver struct {
	Now func() time.Time
}

// NewDeriver creates a deriver using the wall clock
func NewDeriver() *Deriver {
	return &Deriver{Now: time.Now}
}

// Derive returns a copy of the table with the derived columns appended.
// Each column is added only when its source columns exist; for rows where a
// source cell is undefined the derived cell is undefined too. Rows are never
// removed.
func (d *Deriver) Derive(ctx context.Context, t *table.Table) *table.Table {
	out := t.Clone()

	if out.HasColumn("url") {
		addDerived(out, "domainLength", func(r table.Row) table.Value {
			s, ok := r.Get("url").Str()
			if !ok {
				return table.Undefined()
			}
			return table.Number(float64(utf8.RuneCountInString(s)))
		})
	}

	if out.HasColumn("registeredDate") {
		currentYear := d.Now().Year()
		addDerived(out, "domainAge", func(r table.Row) table.Value {
			tm, ok := r.Get("registeredDate").Time()
			if !ok {
				return table.Undefined()
			}
			return table.Number(float64(currentYear - tm.Year()))
		})
	}

	if out.HasColumn("price") && out.HasColumn("startPrice") {
		addDerived(out, "priceDiff", func(r table.Row) table.Value {
			p, ok := r.Get("price").Float()
			if !ok {
				return table.Undefined()
			}
			sp, ok := r.Get("startPrice").Float()
			if !ok {
				return table.Undefined()
			}
			return table.Number(p - sp)
		})
	}

	if out.HasColumn("startDate") && out.HasColumn("endDate") {
		addDerived(out, "auctionDurationDays", func(r table.Row) table.Value {
			start, ok := r.Get("startDate").Time()
			if !ok {
				return table.Undefined()
			}
			end, ok := r.Get("endDate").Time()
			if !ok {
				return table.Undefined()
			}
			return table.Number(math.Floor(end.Sub(start).Hours() / 24))
		})
	}

	slog.Default().InfoContext(ctx, "feature derivation complete",
		"rows", out.Len(),
		"columns", len(out.Columns()))
	return out
}

// addDerived appends one computed column, filling every row
func addDerived(t *table.Table, name string, compute func(r table.Row) table.Value) {
	t.AddColumn(name)
	for i := 0; i < t.Len(); i++ {
		t.Set(i, name, compute(t.RowAt(i)))
	}
}
