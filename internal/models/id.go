package models

import "strconv"

// ID is the canonical string form of an entity identifier. Every
// cross-entity comparison and lookup happens on this type, so numeric and
// string keys from the mobile clients can never diverge.
type ID string

// NumericID converts an integer key into its canonical form.
func NumericID(n int) ID {
	return ID(strconv.Itoa(n))
}

// String returns the raw identifier value.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == ""
}
