package results

import "errors"

var (
	// ErrNotFound is returned when no result exists for a share slug.
	ErrNotFound = errors.New("result not found")

	// ErrSlugTaken is returned when a generated share slug collides with an
	// existing row. Callers retry with a fresh slug.
	ErrSlugTaken = errors.New("share slug already exists")
)
