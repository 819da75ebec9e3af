package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	when := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"undefined", Undefined(), KindUndefined},
		{"string", String("ab.com"), KindString},
		{"number", Number(100), KindNumber},
		{"date", Date(when), KindDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.Equal(t, tt.kind == KindUndefined, tt.v.IsUndefined())
		})
	}

	f, ok := Number(100).Float()
	assert.True(t, ok)
	assert.Equal(t, 100.0, f)

	_, ok = String("x").Float()
	assert.False(t, ok)

	s, ok := String("ab.com").Str()
	assert.True(t, ok)
	assert.Equal(t, "ab.com", s)

	d, ok := Date(when).Time()
	assert.True(t, ok)
	assert.True(t, when.Equal(d))

	_, ok = Undefined().Time()
	assert.False(t, ok)
}

func TestValueFormat(t *testing.T) {
	when := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "NaN", Undefined().Format("2006-01-02"))
	assert.Equal(t, "ab.com", String("ab.com").Format("2006-01-02"))
	assert.Equal(t, "100", Number(100).Format("2006-01-02"))
	assert.Equal(t, "99.5", Number(99.5).Format("2006-01-02"))
	assert.Equal(t, "2015-01-01", Date(when).Format("2006-01-02"))
}

func TestTableBasics(t *testing.T) {
	tbl := New([]string{"url", "price"})

	assert.Equal(t, []string{"url", "price"}, tbl.Columns())
	assert.True(t, tbl.HasColumn("price"))
	assert.False(t, tbl.HasColumn("bidCount"))
	assert.Equal(t, 0, tbl.Len())

	tbl.AppendRow([]Value{String("ab.com"), Number(100)})
	require.Equal(t, 1, tbl.Len())

	v, ok := tbl.At(0, "price").Float()
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)

	// Missing column reads as undefined, never panics
	assert.True(t, tbl.At(0, "bidCount").IsUndefined())
}

func TestAppendRow_PadsShortRows(t *testing.T) {
	tbl := New([]string{"url", "price", "bidCount"})
	tbl.AppendRow([]Value{String("ab.com")})

	assert.True(t, tbl.At(0, "price").IsUndefined())
	assert.True(t, tbl.At(0, "bidCount").IsUndefined())
}

func TestAddColumn_PadsExistingRows(t *testing.T) {
	tbl := New([]string{"url"})
	tbl.AppendRow([]Value{String("ab.com")})
	tbl.AddColumn("domainLength")

	assert.True(t, tbl.HasColumn("domainLength"))
	assert.True(t, tbl.At(0, "domainLength").IsUndefined())

	tbl.Set(0, "domainLength", Number(6))
	v, _ := tbl.At(0, "domainLength").Float()
	assert.Equal(t, 6.0, v)

	// Re-adding is a no-op and does not disturb data
	tbl.AddColumn("domainLength")
	v, _ = tbl.At(0, "domainLength").Float()
	assert.Equal(t, 6.0, v)
}

func TestClone_IsDeep(t *testing.T) {
	tbl := New([]string{"url", "price"})
	tbl.AppendRow([]Value{String("ab.com"), Number(100)})

	cp := tbl.Clone()
	cp.Set(0, "price", Number(999))

	v, _ := tbl.At(0, "price").Float()
	assert.Equal(t, 100.0, v)

	v, _ = cp.At(0, "price").Float()
	assert.Equal(t, 999.0, v)
}

func TestFilter_StableSubset(t *testing.T) {
	tbl := New([]string{"url", "price"})
	tbl.AppendRow([]Value{String("a.com"), Number(100)})
	tbl.AppendRow([]Value{String("b.com"), Number(600)})
	tbl.AppendRow([]Value{String("c.com"), Number(50)})

	cheap := tbl.Filter(func(r Row) bool {
		p, ok := r.Get("price").Float()
		return ok && p < 500
	})

	require.Equal(t, 2, cheap.Len())
	u, _ := cheap.At(0, "url").Str()
	assert.Equal(t, "a.com", u)
	u, _ = cheap.At(1, "url").Str()
	assert.Equal(t, "c.com", u)

	// Source unchanged
	assert.Equal(t, 3, tbl.Len())
}

func TestSortStableBy(t *testing.T) {
	tbl := New([]string{"url", "rating"})
	tbl.AppendRow([]Value{String("a.com"), Number(30)})
	tbl.AppendRow([]Value{String("b.com"), Number(50)})
	tbl.AppendRow([]Value{String("c.com"), Number(50)})
	tbl.AppendRow([]Value{String("d.com"), Number(10)})

	tbl.SortStableBy(func(a, b Row) bool {
		av, _ := a.Get("rating").Float()
		bv, _ := b.Get("rating").Float()
		return av > bv
	})

	var order []string
	for i := 0; i < tbl.Len(); i++ {
		u, _ := tbl.At(i, "url").Str()
		order = append(order, u)
	}
	// b before c: ties keep input order
	assert.Equal(t, []string{"b.com", "c.com", "a.com", "d.com"}, order)
}

func TestHead(t *testing.T) {
	tbl := New([]string{"url"})
	for _, u := range []string{"a.com", "b.com", "c.com"} {
		tbl.AppendRow([]Value{String(u)})
	}

	assert.Equal(t, 2, tbl.Head(2).Len())
	assert.Equal(t, 3, tbl.Head(10).Len())
	assert.Equal(t, 0, tbl.Head(0).Len())
}
