package kiosk

import "errors"

var (
	ErrInvalidConfig     = errors.New("kiosk: invalid config")
	ErrInvalidTransition = errors.New("kiosk: action not allowed in current view")
	ErrInvalidDigit      = errors.New("kiosk: invalid keypad digit")
)
