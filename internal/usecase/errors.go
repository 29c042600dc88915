package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrInsufficientRoster = errors.New("roster too small for rating")
	ErrInvalidSeasonState = errors.New("invalid season state")
	ErrAttributeRange     = errors.New("attribute out of range")
)
