package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/timeclock-kiosk/internal/core/employee"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/inspection"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/kiosk"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/timesheet"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, kiosk.ErrInvalidTransition),
		errors.Is(err, inspection.ErrAlreadySubmitted),
		errors.Is(err, timesheet.ErrNotClockedIn):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, kiosk.ErrInvalidDigit),
		errors.Is(err, inspection.ErrUnknownGroup),
		errors.Is(err, inspection.ErrUnknownItem),
		errors.Is(err, inspection.ErrUnknownField),
		errors.Is(err, inspection.ErrInvalidPhase),
		errors.Is(err, inspection.ErrReadingNotAllowed),
		errors.Is(err, inspection.ErrInvalidReading),
		errors.Is(err, employee.ErrInvalidSource),
		errors.Is(err, employee.ErrInvalidIdentifier),
		errors.Is(err, shift.ErrInvalidEmployeeID),
		errors.Is(err, shift.ErrInvalidStationID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, shift.ErrShiftAlreadyOpen):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, employee.ErrNotFound), errors.Is(err, shift.ErrShiftNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
