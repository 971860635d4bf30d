package model

// Direction is the ordering applied by the sort stage.
type Direction int

const (
	// DirectionNone leaves records in filter order.
	DirectionNone Direction = iota
	// DirectionAscending orders records from lowest to highest value.
	DirectionAscending
	// DirectionDescending orders records from highest to lowest value.
	DirectionDescending
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAscending:
		return "ascending"
	case DirectionDescending:
		return "descending"
	default:
		return "none"
	}
}

// Sort is the active sort configuration. The zero value means unsorted.
type Sort struct {
	Key       Field
	Direction Direction
}

// IsNone reports whether no sort is active.
func (s Sort) IsNone() bool {
	return s.Key == FieldNone || s.Direction == DirectionNone
}

// DirectionFor returns the direction applied to f, or DirectionNone when
// f is not the active sort key.
func (s Sort) DirectionFor(f Field) Direction {
	if s.IsNone() || s.Key != f {
		return DirectionNone
	}
	return s.Direction
}

// Next returns the sort produced by requesting f. A new field starts
// ascending and the active field toggles between ascending and descending.
// Once sorted, there is no way back to the unsorted state.
func (s Sort) Next(f Field) Sort {
	if !s.IsNone() && s.Key == f && s.Direction == DirectionAscending {
		return Sort{Key: f, Direction: DirectionDescending}
	}
	return Sort{Key: f, Direction: DirectionAscending}
}
