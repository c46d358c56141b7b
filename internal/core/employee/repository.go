package employee

import (
	"context"

	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
)

// Repository は社員ディレクトリ参照の抽象です。
type Repository interface {
	FindByCode(ctx context.Context, employeeCode string) (*Employee, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*Employee, error)
}

// ShiftFinder は社員の開いている勤務を参照します。
type ShiftFinder interface {
	FindOpen(ctx context.Context, employeeID string) (*shift.Shift, error)
}
