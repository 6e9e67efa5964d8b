package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// FeaturedCapacityError is returned when a featured-memory add hits the slot
// cap without naming a match to replace. Current carries the featured match
// ids so the caller can pick one to vacate.
type FeaturedCapacityError struct {
	Current []int64
}

func (e *FeaturedCapacityError) Error() string {
	return fmt.Sprintf("%v: featured memories are full, pass replace_match_id with one of %v", ErrConflict, e.Current)
}

func (e *FeaturedCapacityError) Unwrap() error {
	return ErrConflict
}
