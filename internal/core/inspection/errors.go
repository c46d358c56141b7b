package inspection

import "errors"

var (
	ErrUnknownGroup      = errors.New("inspection: unknown group")
	ErrUnknownItem       = errors.New("inspection: unknown item")
	ErrUnknownField      = errors.New("inspection: unknown field")
	ErrInvalidPhase      = errors.New("inspection: invalid phase")
	ErrReadingNotAllowed = errors.New("inspection: item does not take a reading")
	ErrInvalidReading    = errors.New("inspection: invalid reading")
	ErrAlreadySubmitted  = errors.New("inspection: already submitted")
	ErrCaptureCancelled  = errors.New("inspection: photo capture cancelled")
)
