package domain

import "errors"

// Domain errors.
var (
	ErrIndexNotFound     = errors.New("locale index not found")
	ErrLocaleNotFound    = errors.New("locale not present in index")
	ErrMalformedResource = errors.New("malformed locale resource")
	ErrNoDefaultLocale   = errors.New("default locale missing from index")
)
