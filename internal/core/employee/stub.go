package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
)

// 社員ディレクトリを持たない端末で使う固定の社員情報です。
const (
	StubCardDisplayName   = "John Driver"
	StubCardEmployeeID    = "EMP12345"
	StubManualDisplayName = "Jane Operator"
)

// StubAuthenticator は入力経路ごとに固定の社員を返す Authenticator です。
// shifts を渡すと、その勤務記録から出勤状態を補います。
type StubAuthenticator struct {
	shifts ShiftFinder
}

// NewStubAuthenticator は StubAuthenticator を生成します。
func NewStubAuthenticator(shifts ShiftFinder) *StubAuthenticator {
	return &StubAuthenticator{shifts: shifts}
}

// Authenticate はカード読み取りなら John Driver、手入力なら入力された ID の Jane Operator を返します。
func (a *StubAuthenticator) Authenticate(ctx context.Context, src Source) (*Record, error) {
	var rec *Record
	switch src.Kind {
	case SourceCardRead:
		rec = &Record{DisplayName: StubCardDisplayName, EmployeeID: StubCardEmployeeID}
	case SourceManualID:
		id := strings.TrimSpace(src.Value)
		if id == "" {
			return nil, fmt.Errorf("employee id: %w", ErrNotFound)
		}
		rec = &Record{DisplayName: StubManualDisplayName, EmployeeID: id}
	default:
		return nil, ErrInvalidSource
	}

	if a.shifts == nil {
		return rec, nil
	}

	open, err := a.shifts.FindOpen(ctx, rec.EmployeeID)
	switch {
	case errors.Is(err, shift.ErrShiftNotFound):
	case err != nil:
		return nil, fmt.Errorf("find open shift: %w", err)
	default:
		rec.ClockedIn = true
		rec.InspectionCompleted = open.Inspected()
		rec.ClockInTime = open.ClockInLabel
	}
	return rec, nil
}
