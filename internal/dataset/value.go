package dataset

import (
	"strconv"
	"strings"
)

// Kind discriminates the three raw cell shapes: absent, text, number.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
)

// Value is one raw cell. Values are immutable once ingested.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
}

// Null returns the absent value.
func Null() Value { return Value{Kind: KindNull} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// String renders the value for display, sampling, and keyword matching.
// Null renders as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// nullTokens are cell contents treated as absent on ingestion.
var nullTokens = map[string]struct{}{
	"": {}, "null": {}, "none": {}, "nan": {}, "na": {}, "n/a": {},
}

// ParseCell converts one raw cell string into a Value: null tokens
// become Null, parseable numbers become Number, everything else Text.
func ParseCell(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if _, ok := nullTokens[strings.ToLower(trimmed)]; ok {
		return Null()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(f)
	}
	return Text(trimmed)
}
