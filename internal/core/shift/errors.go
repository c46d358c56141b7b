package shift

import "errors"

var (
	ErrInvalidEmployeeID = errors.New("shift: invalid employee id")
	ErrInvalidStationID  = errors.New("shift: invalid station id")
	ErrShiftNotFound     = errors.New("shift: open shift not found")
	ErrShiftAlreadyOpen  = errors.New("shift: shift already open")
)
