package domain

import "errors"

var (
	// ErrSourceUnavailable is returned when an upstream catalog request fails
	ErrSourceUnavailable = errors.New("upstream catalog unavailable")

	// ErrNoProducts is returned when an upstream source yields no usable records
	ErrNoProducts = errors.New("no products found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrAdviceUnavailable is returned when the advice provider call fails
	ErrAdviceUnavailable = errors.New("advice generation failed")

	// ErrMissingAPIKey is returned at construction time when a mandatory
	// provider credential is absent
	ErrMissingAPIKey = errors.New("missing API key")
)
