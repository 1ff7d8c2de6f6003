package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel handlers match on to produce a 404.
var ErrNotFound = errors.New("not found")

// NotFoundError keeps the entity name and id so the response body carries the
// same message the API has always produced, e.g. "Film not found with id: 7".
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
