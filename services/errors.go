package services

import "errors"

// Every service returns one of these sentinels (possibly wrapped with
// context); the controllers map them to HTTP statuses in one place.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")

	// ErrUnresolvedAssociation means a meal-food row reached the calorie
	// engine without its Food loaded. That is a bug in the caller, not a
	// user-facing condition.
	ErrUnresolvedAssociation = errors.New("unresolved meal-food association")
)
