// Package model defines the core data types for the PLU reference table.
package model

// Record is a single produce entry. Records are created once when the
// dataset is loaded and never mutated.
type Record struct {
	Code    string // PLU code, the primary key
	Korean  string
	English string
	French  string
	Season  string // Free-form seasonality description
}

// Value returns the record's value for the given field.
// Unknown fields yield the empty string.
func (r Record) Value(f Field) string {
	switch f {
	case FieldCode:
		return r.Code
	case FieldKorean:
		return r.Korean
	case FieldEnglish:
		return r.English
	case FieldFrench:
		return r.French
	case FieldSeason:
		return r.Season
	default:
		return ""
	}
}

// SeasonOrNA returns the seasonality text, or "N/A" when it is empty.
func (r Record) SeasonOrNA() string {
	if r.Season == "" {
		return "N/A"
	}
	return r.Season
}
