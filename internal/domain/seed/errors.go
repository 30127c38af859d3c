package seed

import "errors"

var (
	ErrInvalidConfig       = errors.New("invalid generation config")
	ErrUniquenessExhausted = errors.New("unique value pool exhausted")
	ErrNoEligibleCities    = errors.New("no eligible cities for the selected countries")
)
