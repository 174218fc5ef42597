package app

import (
	"encoding/json"
	"strconv"
	"strings"
)

type ValueKind uint8

const (
	KindText ValueKind = iota
	KindNumber
	KindBool
)

// Value is a single decoded cell. Exactly one of Text, Number or Bool is
// meaningful, selected by Kind.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Bool   bool
}

func Text(s string) Value    { return Value{Kind: KindText, Text: s} }
func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }

// String renders the value the way it is validated and persisted.
// Numbers never use exponent notation so long identifiers keep every digit.
func (this Value) String() string {
	switch this.Kind {
	case KindNumber:
		return strconv.FormatFloat(this.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(this.Bool)
	default:
		return this.Text
	}
}

// IsBlank reports a text cell holding nothing but whitespace.
func (this Value) IsBlank() bool {
	return this.Kind == KindText && strings.TrimSpace(this.Text) == ""
}

func (this Value) MarshalJSON() ([]byte, error) {
	switch this.Kind {
	case KindNumber:
		return json.Marshal(this.Number)
	case KindBool:
		return json.Marshal(this.Bool)
	default:
		return json.Marshal(this.Text)
	}
}

// Row maps header column names to cell values of one sheet line.
type Row map[string]Value

// ValidationErrorsKey is the JSON key carrying the joined validation messages.
const ValidationErrorsKey = "validation errors"

type AnnotatedRow struct {
	Row              Row
	ValidationErrors string
}

func (this AnnotatedRow) Valid() bool {
	return this.ValidationErrors == ""
}

// MarshalJSON flattens the row columns and the validation errors into one object.
func (this AnnotatedRow) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(this.Row)+1)
	for k, v := range this.Row {
		out[k] = v
	}
	out[ValidationErrorsKey] = this.ValidationErrors
	return json.Marshal(out)
}

// Batch is the ordered set of rows from one ingestion.
type Batch []AnnotatedRow

func (this Batch) InvalidCount() int {
	var n int
	for _, row := range this {
		if !row.Valid() {
			n++
		}
	}
	return n
}
