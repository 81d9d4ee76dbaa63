// Package uuid wraps github.com/google/uuid so that IDs can be bound
// directly from URI and query parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// New returns a new time ordered UUID.
//
// Version 7 UUIDs sort in creation order, which is what keeps listings
// stable when several resources share the same timestamp.
func New() UUID {
	return UUID{google_uuid.Must(google_uuid.NewV7())}
}

func NewString() string {
	return New().String()
}

// UnmarshalParam implements the uuid.Parse method
// from https://pkg.go.dev/github.com/google/uuid#Parse
// for UUID
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
