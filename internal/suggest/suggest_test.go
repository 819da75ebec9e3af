package suggest

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afcli/internal/shared/testutil"
	"afcli/internal/table"
)

func listings(rows ...[3]interface{}) *table.Table {
	t := table.New([]string{"url", "price", "ahrefsDomainRating"})
	for _, row := range rows {
		cells := make([]table.Value, 3)
		cells[0] = table.String(row[0].(string))
		for i := 1; i < 3; i++ {
			switch v := row[i].(type) {
			case float64:
				cells[i] = table.Number(v)
			case int:
				cells[i] = table.Number(float64(v))
			default:
				cells[i] = table.Undefined()
			}
		}
		t.AppendRow(cells)
	}
	return t
}

func TestSuggest_SelectionPredicate(t *testing.T) {
	tbl := listings(
		[3]interface{}{"cheap-strong.com", 100, 30}, // keep
		[3]interface{}{"dear-strong.com", 600, 50},  // price too high
		[3]interface{}{"cheap-weak.com", 100, 10},   // rating too low
		[3]interface{}{"edge-price.com", 500, 30},   // strict: price == threshold excluded
		[3]interface{}{"edge-rating.com", 100, 20},  // strict: rating == threshold excluded
	)

	out := Suggest(context.Background(), tbl, 500, 20)
	require.Equal(t, 1, out.Len())

	u, _ := out.At(0, "url").Str()
	assert.Equal(t, "cheap-strong.com", u)
}

func TestSuggest_UndefinedCellsExcluded(t *testing.T) {
	tbl := listings(
		[3]interface{}{"no-price.com", nil, 30},
		[3]interface{}{"no-rating.com", 100, nil},
		[3]interface{}{"ok.com", 100, 30},
	)

	out := Suggest(context.Background(), tbl, 500, 20)
	require.Equal(t, 1, out.Len())

	u, _ := out.At(0, "url").Str()
	assert.Equal(t, "ok.com", u)
}

func TestSuggest_OrderingRatingDescendingStable(t *testing.T) {
	tbl := listings(
		[3]interface{}{"mid.com", 100, 30},
		[3]interface{}{"top.com", 100, 50},
		[3]interface{}{"tie-first.com", 100, 40},
		[3]interface{}{"tie-second.com", 200, 40},
	)

	out := Suggest(context.Background(), tbl, 500, 20)
	require.Equal(t, 4, out.Len())

	var order []string
	for i := 0; i < out.Len(); i++ {
		u, _ := out.At(i, "url").Str()
		order = append(order, u)
	}
	assert.Equal(t, []string{"top.com", "tie-first.com", "tie-second.com", "mid.com"}, order)

	// non-increasing rating invariant
	prev := 1e18
	for i := 0; i < out.Len(); i++ {
		r, ok := out.At(i, "ahrefsDomainRating").Float()
		require.True(t, ok)
		assert.LessOrEqual(t, r, prev)
		prev = r
	}
}

func TestSuggest_MissingColumnDegradesToEmpty(t *testing.T) {
	handler := testutil.SetDefaultTestLogger(t)

	tbl := table.New([]string{"url", "price"}) // no ahrefsDomainRating
	tbl.AppendRow([]table.Value{table.String("ab.com"), table.Number(100)})

	out := Suggest(context.Background(), tbl, 500, 20)

	assert.Equal(t, 0, out.Len())
	assert.True(t, handler.ContainsMessage("column not found"))
	assert.True(t, handler.ContainsAttr("column", "ahrefsDomainRating"))
	require.NotEmpty(t, handler.GetRecordsByLevel(slog.LevelWarn))
}

func TestSuggest_MissingPriceColumnDegradesToEmpty(t *testing.T) {
	testutil.SetDefaultTestLogger(t)

	tbl := table.New([]string{"url", "ahrefsDomainRating"})
	tbl.AppendRow([]table.Value{table.String("ab.com"), table.Number(30)})

	out := Suggest(context.Background(), tbl, 500, 20)
	assert.Equal(t, 0, out.Len())
}

func TestSuggest_DoesNotMutateInput(t *testing.T) {
	tbl := listings(
		[3]interface{}{"b.com", 100, 30},
		[3]interface{}{"a.com", 100, 50},
	)

	_ = Suggest(context.Background(), tbl, 500, 20)

	// input row order untouched by the result's sort
	u, _ := tbl.At(0, "url").Str()
	assert.Equal(t, "b.com", u)
	assert.Equal(t, 2, tbl.Len())
}

func TestSuggest_CompletenessOfSelection(t *testing.T) {
	tbl := listings(
		[3]interface{}{"a.com", 100, 30},
		[3]interface{}{"b.com", 499.99, 20.01},
		[3]interface{}{"c.com", 600, 50},
	)

	out := Suggest(context.Background(), tbl, 500, 20)

	// every qualifying row appears in the result
	require.Equal(t, 2, out.Len())
	seen := map[string]bool{}
	for i := 0; i < out.Len(); i++ {
		u, _ := out.At(i, "url").Str()
		seen[u] = true
	}
	assert.True(t, seen["a.com"])
	assert.True(t, seen["b.com"])
}
