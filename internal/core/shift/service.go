package shift

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/clockface"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は出退勤記録のユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
	newID func() string
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx, newID: uuid.NewString}
}

// ClockInInput は出勤記録の入力です。
type ClockInInput struct {
	EmployeeID string
	StationID  string
	ClockInAt  time.Time
	Label      string
}

// ClockIn は新しい勤務を開始します。既に開いている勤務があればエラーを返します。
func (s *Service) ClockIn(ctx context.Context, in ClockInInput) (*Shift, error) {
	employeeID, err := normalizeEmployeeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	stationID := strings.TrimSpace(in.StationID)
	if stationID == "" {
		return nil, ErrInvalidStationID
	}

	at := in.ClockInAt
	if at.IsZero() {
		at = s.clock.Now()
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		label = clockface.FormatTime(at)
	}

	var created *Shift
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.repo.FindOpenShift(txCtx, employeeID)
		if err != nil && !errors.Is(err, ErrShiftNotFound) {
			return err
		}
		if open != nil {
			return ErrShiftAlreadyOpen
		}

		sh := &Shift{
			ID:           s.newID(),
			EmployeeID:   employeeID,
			StationID:    stationID,
			ClockInAt:    at,
			ClockInLabel: label,
		}
		if err := s.repo.CreateShift(txCtx, sh); err != nil {
			return err
		}
		created = sh
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// MarkInspected は開いている勤務に点検完了時刻を記録します。
func (s *Service) MarkInspected(ctx context.Context, employeeID string) error {
	id, err := normalizeEmployeeID(employeeID)
	if err != nil {
		return err
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.repo.FindOpenShift(txCtx, id)
		if err != nil {
			return err
		}
		if open.Inspected() {
			return nil
		}
		return s.repo.MarkShiftInspected(txCtx, open.ID, s.clock.Now())
	})
}

// ClockOut は開いている勤務を終了します。
func (s *Service) ClockOut(ctx context.Context, employeeID string) (*Shift, error) {
	id, err := normalizeEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	var closed *Shift
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.repo.FindOpenShift(txCtx, id)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if err := s.repo.CloseShift(txCtx, open.ID, now); err != nil {
			return err
		}
		open.ClockOutAt = &now
		closed = open
		return nil
	}); err != nil {
		return nil, err
	}

	return closed, nil
}

// FindOpen は社員の開いている勤務を返します。
func (s *Service) FindOpen(ctx context.Context, employeeID string) (*Shift, error) {
	id, err := normalizeEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	var found *Shift
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		sh, err := s.repo.FindOpenShift(txCtx, id)
		if err != nil {
			return err
		}
		found = sh
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

func normalizeEmployeeID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("employee_id: %w", ErrInvalidEmployeeID)
	}
	return trimmed, nil
}
