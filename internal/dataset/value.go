package dataset

import (
	"strconv"
	"strings"
)

// Kind identifies how a cell value should be interpreted.
type Kind int

const (
	// KindMissing marks an absent or unparsable cell.
	KindMissing Kind = iota
	// KindNumber marks a numeric cell.
	KindNumber
	// KindText marks a free-text cell.
	KindText
)

// Value is a single table cell: a number, a piece of text, or missing.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Missing returns the missing value.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// ParseValue classifies a raw cell string. Whitespace is trimmed and thousands
// separators removed before numeric parsing; an empty cell becomes missing and
// anything that fails to parse as a number stays text.
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Missing()
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		return Number(f)
	}
	return Text(trimmed)
}

// Kind reports the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the value is missing.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Float returns the numeric payload; ok is false for text and missing values.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Coerce attempts to reinterpret the value as a number. Numbers pass through,
// parsable text becomes a number, and everything else degrades to missing.
func (v Value) Coerce() Value {
	switch v.kind {
	case KindNumber:
		return v
	case KindText:
		parsed := ParseValue(v.text)
		if parsed.kind == KindNumber {
			return parsed
		}
		return Missing()
	default:
		return Missing()
	}
}

// String renders the value for display and CSV output. Missing values render
// as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindText:
		return v.text == other.text
	default:
		return true
	}
}
