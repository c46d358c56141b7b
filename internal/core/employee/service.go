package employee

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
)

// Authenticator は社員識別子から社員レコードを解決する境界です。
// 未登録の識別子には ErrNotFound を返します。
type Authenticator interface {
	Authenticate(ctx context.Context, src Source) (*Record, error)
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

var manualIDPattern = regexp.MustCompile(`^[0-9]{1,10}$`)

// Service は社員ディレクトリを使う Authenticator の本番実装です。
type Service struct {
	repo   Repository
	shifts ShiftFinder
	tx     TransactionManager
}

// NewService は Service を生成します。shifts が nil の場合は常に未出勤として扱います。
func NewService(repo Repository, shifts ShiftFinder, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, shifts: shifts, tx: tx}
}

// Authenticate は社員を検索し、開いている勤務から出勤状態を補います。
func (s *Service) Authenticate(ctx context.Context, src Source) (*Record, error) {
	key, err := normalizeSource(src)
	if err != nil {
		return nil, err
	}

	var result *Record
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		emp, err := s.lookup(txCtx, src.Kind, key)
		if err != nil {
			return err
		}
		if emp.Status != StatusActive {
			return fmt.Errorf("%s is %s: %w", emp.EmployeeCode, emp.Status, ErrNotFound)
		}

		rec := &Record{DisplayName: emp.DisplayName, EmployeeID: emp.EmployeeCode}
		if err := s.fillShift(txCtx, rec); err != nil {
			return err
		}
		result = rec
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) lookup(ctx context.Context, kind SourceKind, key string) (*Employee, error) {
	switch kind {
	case SourceCardRead:
		return s.repo.FindByCardNumber(ctx, key)
	case SourceManualID:
		return s.repo.FindByCode(ctx, key)
	default:
		return nil, ErrInvalidSource
	}
}

func (s *Service) fillShift(ctx context.Context, rec *Record) error {
	if s.shifts == nil {
		return nil
	}

	open, err := s.shifts.FindOpen(ctx, rec.EmployeeID)
	if errors.Is(err, shift.ErrShiftNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find open shift: %w", err)
	}

	rec.ClockedIn = true
	rec.InspectionCompleted = open.Inspected()
	rec.ClockInTime = open.ClockInLabel
	return nil
}

func normalizeSource(src Source) (string, error) {
	value := strings.TrimSpace(src.Value)
	switch src.Kind {
	case SourceCardRead:
		if value == "" {
			return "", fmt.Errorf("card number: %w", ErrInvalidIdentifier)
		}
		return value, nil
	case SourceManualID:
		if !manualIDPattern.MatchString(value) {
			return "", fmt.Errorf("employee id %q: %w", value, ErrInvalidIdentifier)
		}
		return value, nil
	default:
		return "", ErrInvalidSource
	}
}
