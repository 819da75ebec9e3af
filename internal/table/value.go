package table

import (
	"strconv"
	"time"
)

// Kind identifies the type a cell value was coerced to.
type Kind int

const (
	// KindUndefined marks a value that was present in the source but could
	// not be interpreted as the target type, or was never populated.
	// Distinct from "column absent".
	KindUndefined Kind = iota
	KindString
	KindNumber
	KindDate
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "undefined"
	}
}

// Value is a single table cell: a typed value or the undefined marker.
// Consumers are expected to branch on the accessor's ok result instead of
// assuming a kind; arithmetic over cells propagates undefinedness.
type Value struct {
	kind Kind
	str  string
	num  float64
	date time.Time
}

// Undefined returns the undefined marker value
func Undefined() Value {
	return Value{kind: KindUndefined}
}

// String wraps a raw text value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Date wraps a date value
func Date(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

// Kind returns the kind tag of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsUndefined reports whether the value is the undefined marker
func (v Value) IsUndefined() bool {
	return v.kind == KindUndefined
}

// Float returns the numeric value, with ok false for any other kind
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Str returns the string value, with ok false for any other kind
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Time returns the date value, with ok false for any other kind
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	return v.date, true
}

// Format renders the value for text output. Undefined values render as NaN,
// matching the analyst-facing printout convention of the report tables.
func (v Value) Format(dateLayout string) string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		return v.date.Format(dateLayout)
	default:
		return "NaN"
	}
}
