package shift

import (
	"context"
	"time"
)

// Repository は勤務記録永続化の抽象です。
type Repository interface {
	CreateShift(ctx context.Context, s *Shift) error
	FindOpenShift(ctx context.Context, employeeID string) (*Shift, error)
	MarkShiftInspected(ctx context.Context, id string, at time.Time) error
	CloseShift(ctx context.Context, id string, at time.Time) error
}
