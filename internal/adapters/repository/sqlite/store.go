// Package sqlite は端末単体で動作するための SQLite ストレージです。
// 社員ディレクトリ・勤務記録・点検票を 1 つのファイルに保存します。
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/timeclock-kiosk/internal/adapters/repository/sqlite/migrations"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/employee"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/inspection"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
	sqlitedb "github.com/ogurasousui/timeclock-kiosk/internal/platform/db/sqlite"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var ErrInspectionNotFound = errors.New("sqlite: inspection not found")

// Store は SQLite を利用した永続化実装です。
type Store struct {
	db *sql.DB
}

// Open は path の SQLite ストアを開き、スキーマを適用します。
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlitedb.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := sqlitedb.ApplyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close はデータベースを閉じます。
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

// FindByCode は社員コードで社員を取得します。
func (s *Store) FindByCode(ctx context.Context, employeeCode string) (*employee.Employee, error) {
	return s.findEmployee(ctx, "employee_code", employeeCode)
}

// FindByCardNumber は ID カード番号で社員を取得します。
func (s *Store) FindByCardNumber(ctx context.Context, cardNumber string) (*employee.Employee, error) {
	return s.findEmployee(ctx, "card_number", cardNumber)
}

func (s *Store) findEmployee(ctx context.Context, column, value string) (*employee.Employee, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, employee_code, card_number, display_name, status, created_at, updated_at
  FROM employees
 WHERE `+column+` = ?`, value)

	var (
		e         employee.Employee
		card      sql.NullString
		status    string
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&e.ID, &e.EmployeeCode, &card, &e.DisplayName, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrNotFound
		}
		return nil, fmt.Errorf("find employee by %s: %w", column, err)
	}
	e.CardNumber = card.String
	e.Status = employee.Status(status)
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return &e, nil
}

// Upsert は社員コードをキーに社員を登録・更新します。
func (s *Store) Upsert(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	if strings.TrimSpace(e.EmployeeCode) == "" {
		return nil, employee.ErrInvalidIdentifier
	}
	status := e.Status
	if status == "" {
		status = employee.StatusActive
	}
	now := e.UpdatedAt
	if now.IsZero() {
		now = time.Now()
	}

	var card any
	if e.CardNumber != "" {
		card = e.CardNumber
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO employees (id, employee_code, card_number, display_name, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (employee_code) DO UPDATE
   SET card_number = excluded.card_number,
       display_name = excluded.display_name,
       status = excluded.status,
       updated_at = excluded.updated_at`,
		uuid.NewString(), e.EmployeeCode, card, e.DisplayName, string(status), toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert employee %s: %w", e.EmployeeCode, err)
	}
	return s.FindByCode(ctx, e.EmployeeCode)
}

// CreateShift は出勤記録を作成します。
func (s *Store) CreateShift(ctx context.Context, sh *shift.Shift) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO shifts (id, employee_code, station_id, clock_in_at, clock_in_label)
VALUES (?, ?, ?, ?, ?)`,
		sh.ID, sh.EmployeeID, sh.StationID, toMillis(sh.ClockInAt), sh.ClockInLabel,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return shift.ErrShiftAlreadyOpen
		}
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// FindOpenShift は退勤前の勤務を取得します。
func (s *Store) FindOpenShift(ctx context.Context, employeeID string) (*shift.Shift, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, employee_code, station_id, clock_in_at, clock_in_label, inspection_completed_at, clock_out_at
  FROM shifts
 WHERE employee_code = ? AND clock_out_at IS NULL
 ORDER BY clock_in_at DESC
 LIMIT 1`, employeeID)

	var (
		sh        shift.Shift
		clockIn   int64
		inspected sql.NullInt64
		clockOut  sql.NullInt64
	)
	if err := row.Scan(&sh.ID, &sh.EmployeeID, &sh.StationID, &clockIn, &sh.ClockInLabel, &inspected, &clockOut); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("find open shift: %w", err)
	}
	sh.ClockInAt = fromMillis(clockIn)
	if inspected.Valid {
		t := fromMillis(inspected.Int64)
		sh.InspectionCompletedAt = &t
	}
	if clockOut.Valid {
		t := fromMillis(clockOut.Int64)
		sh.ClockOutAt = &t
	}
	return &sh, nil
}

// MarkShiftInspected は点検完了時刻を記録します。
func (s *Store) MarkShiftInspected(ctx context.Context, id string, at time.Time) error {
	return s.updateOpenShift(ctx, "inspection_completed_at", id, at)
}

// CloseShift は退勤時刻を記録します。
func (s *Store) CloseShift(ctx context.Context, id string, at time.Time) error {
	return s.updateOpenShift(ctx, "clock_out_at", id, at)
}

func (s *Store) updateOpenShift(ctx context.Context, column, id string, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE shifts SET `+column+` = ? WHERE id = ? AND clock_out_at IS NULL`,
		toMillis(at), id,
	)
	if err != nil {
		return fmt.Errorf("update shift %s: %w", column, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update shift %s: %w", column, err)
	}
	if n == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// SubmitInspection は点検票を保存します。同じ ID の再提出は上書きします。
func (s *Store) SubmitInspection(ctx context.Context, rec inspection.Record) error {
	enc, err := inspection.Encode(rec)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO inspections (id, employee_code, station_id, captured_at, fields, checklist, photos)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE
   SET captured_at = excluded.captured_at,
       fields = excluded.fields,
       checklist = excluded.checklist,
       photos = excluded.photos`,
		rec.ID, rec.EmployeeID, rec.StationID, toMillis(rec.CapturedAt),
		string(enc.Fields), string(enc.Checklist), string(enc.Photos),
	)
	if err != nil {
		return fmt.Errorf("insert inspection %s: %w", rec.ID, err)
	}
	return nil
}

// FindInspection は保存済みの点検票を取得します。
func (s *Store) FindInspection(ctx context.Context, id string) (*inspection.Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, employee_code, station_id, captured_at, fields, checklist, photos
  FROM inspections
 WHERE id = ?`, id)

	var (
		rec        inspection.Record
		capturedAt int64
		fields     string
		checklist  string
		photos     string
	)
	if err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.StationID, &capturedAt, &fields, &checklist, &photos); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInspectionNotFound
		}
		return nil, fmt.Errorf("find inspection: %w", err)
	}
	rec.CapturedAt = fromMillis(capturedAt)
	if err := inspection.Decode(&rec, inspection.Encoded{
		Fields:    []byte(fields),
		Checklist: []byte(checklist),
		Photos:    []byte(photos),
	}); err != nil {
		return nil, err
	}
	return &rec, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var (
	_ employee.Repository = (*Store)(nil)
	_ employee.Writer     = (*Store)(nil)
	_ shift.Repository    = (*Store)(nil)
	_ inspection.Sink     = (*Store)(nil)
)
