package service

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrCountryRequired   = errors.New("country is required")
	ErrUnauthenticated   = errors.New("unauthenticated")
)
