package models

import "fmt"

// SortKey names a sortable display column.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByEmail SortKey = "email"
	SortByRole  SortKey = "role"
)

// Columns lists the display columns in table order.
var Columns = []SortKey{SortByName, SortByEmail, SortByRole}

// Field returns the display text of u for the column k.
func (k SortKey) Field(u User) string {
	switch k {
	case SortByName:
		return u.Name
	case SortByEmail:
		return u.Email
	case SortByRole:
		return string(u.Role)
	}
	return ""
}

// ParseSortKey converts a column name into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range Columns {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown column %q", s)
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortState is the active sort column and direction. It only lives in the UI.
type SortState struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSort is name ascending.
func DefaultSort() SortState {
	return SortState{Key: SortByName, Direction: Ascending}
}

// Toggle selects key: the active key flips its direction, any other key
// becomes active in ascending order.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		if s.Direction == Ascending {
			return SortState{Key: key, Direction: Descending}
		}
		return SortState{Key: key, Direction: Ascending}
	}
	return SortState{Key: key, Direction: Ascending}
}
