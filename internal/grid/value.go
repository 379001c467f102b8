package grid

import (
	"strconv"
	"time"
)

// Kind tags the closed set of cell value variants.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindBool
	KindInstant
)

// Value is a table cell value: text, number, boolean, or a point in time.
// The zero Value is text "" (an empty cell). Dispatch happens on the kind
// tag, never on runtime type inspection.
type Value struct {
	kind Kind
	text string
	num  float64
	b    bool
	t    time.Time
}

// Text makes a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number makes a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool makes a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Instant makes a date/time value.
func Instant(t time.Time) Value { return Value{kind: KindInstant, t: t} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Time returns the instant for KindInstant values; the zero time otherwise.
func (v Value) Time() time.Time { return v.t }

// instantLayout is the canonical display form for dates: zero-padded
// MM-DD-YYYY. Filtering, sorting, and rendering all go through Format,
// so what the user searches and sorts is exactly what they see.
const instantLayout = "01-02-2006"

// Format converts a value to its canonical display text.
func (v Value) Format() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInstant:
		if v.t.IsZero() {
			return ""
		}
		return v.t.Format(instantLayout)
	default:
		return v.text
	}
}
