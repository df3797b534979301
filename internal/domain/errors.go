package domain

import "errors"

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidAge      = errors.New("invalid age")
	ErrInvalidGender   = errors.New("invalid gender")
	ErrInvalidPassport = errors.New("invalid passport number")

	ErrFlightNotFound    = errors.New("flight not found")
	ErrNoSeatsAvailable  = errors.New("no seats available")
	ErrPassengerNotFound = errors.New("passenger not found")
)
