package model

import "fmt"

// Field identifies a displayable attribute of a Record.
type Field string

// Known fields. FieldNone is the zero value and means "no field".
const (
	FieldNone    Field = ""
	FieldCode    Field = "plu"
	FieldKorean  Field = "korean"
	FieldEnglish Field = "english"
	FieldFrench  Field = "french"
	FieldSeason  Field = "season"
)

// ColumnConfig describes one reorderable, toggleable column.
type ColumnConfig struct {
	Field          Field
	Label          string
	DefaultVisible bool
}

// CodeLabel is the header label of the always-visible code column.
const CodeLabel = "PLU"

// columns is the fixed column table in default order.
var columns = [...]ColumnConfig{
	{Field: FieldKorean, Label: "Korean", DefaultVisible: true},
	{Field: FieldEnglish, Label: "English", DefaultVisible: true},
	{Field: FieldFrench, Label: "French", DefaultVisible: false},
	{Field: FieldSeason, Label: "Season", DefaultVisible: false},
}

// Columns returns a copy of the column configuration in default order.
func Columns() []ColumnConfig {
	out := make([]ColumnConfig, len(columns))
	copy(out, columns[:])
	return out
}

// SortableFields returns every field that can be sorted on, code first.
func SortableFields() []Field {
	fields := make([]Field, 0, len(columns)+1)
	fields = append(fields, FieldCode)
	for _, c := range columns {
		fields = append(fields, c.Field)
	}
	return fields
}

// IsColumn reports whether f belongs to the fixed column set.
func (f Field) IsColumn() bool {
	for _, c := range columns {
		if c.Field == f {
			return true
		}
	}
	return false
}

// IsValid reports whether f is the code field or a column.
func (f Field) IsValid() bool {
	return f == FieldCode || f.IsColumn()
}

// Label returns the display label for f.
func (f Field) Label() string {
	if f == FieldCode {
		return CodeLabel
	}
	for _, c := range columns {
		if c.Field == f {
			return c.Label
		}
	}
	return string(f)
}

// ParseField converts a user supplied name into a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.IsValid() {
		return FieldNone, fmt.Errorf("unknown field %q, want one of %v", s, SortableFields())
	}
	return f, nil
}
