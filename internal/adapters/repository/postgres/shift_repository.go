package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
	pgdb "github.com/ogurasousui/timeclock-kiosk/internal/platform/db/postgres"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

// ShiftRepository は PostgreSQL を利用した勤務記録の永続化実装です。
type ShiftRepository struct {
	pool pgdb.Queryer
}

// NewShiftRepository は ShiftRepository を生成します。
func NewShiftRepository(pool pgdb.Queryer) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

// CreateShift は出勤記録を作成します。同じ社員の開いている勤務があれば ErrShiftAlreadyOpen を返します。
func (r *ShiftRepository) CreateShift(ctx context.Context, s *shift.Shift) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO shifts (id, employee_code, station_id, clock_in_at, clock_in_label)
        VALUES ($1, $2, $3, $4, $5)
    `,
		s.ID,
		s.EmployeeID,
		s.StationID,
		s.ClockInAt.UTC(),
		s.ClockInLabel,
	)
	if err != nil {
		return translateShiftPgError(err)
	}
	return nil
}

// FindOpenShift は退勤前の勤務を取得します。
func (r *ShiftRepository) FindOpenShift(ctx context.Context, employeeID string) (*shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, employee_code, station_id, clock_in_at, clock_in_label, inspection_completed_at, clock_out_at
          FROM shifts
         WHERE employee_code = $1 AND clock_out_at IS NULL
         ORDER BY clock_in_at DESC
         LIMIT 1
    `, employeeID)

	return scanShift(row)
}

// MarkShiftInspected は点検完了時刻を記録します。
func (r *ShiftRepository) MarkShiftInspected(ctx context.Context, id string, at time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE shifts
           SET inspection_completed_at = $1
         WHERE id = $2 AND clock_out_at IS NULL
    `, at.UTC(), id)
	if err != nil {
		return translateShiftPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// CloseShift は退勤時刻を記録します。
func (r *ShiftRepository) CloseShift(ctx context.Context, id string, at time.Time) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE shifts
           SET clock_out_at = $1
         WHERE id = $2 AND clock_out_at IS NULL
    `, at.UTC(), id)
	if err != nil {
		return translateShiftPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func scanShift(row pgx.Row) (*shift.Shift, error) {
	var (
		s         shift.Shift
		clockIn   time.Time
		inspected sql.NullTime
		clockOut  sql.NullTime
	)

	if err := row.Scan(&s.ID, &s.EmployeeID, &s.StationID, &clockIn, &s.ClockInLabel, &inspected, &clockOut); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, err
	}

	s.ClockInAt = clockIn.UTC()
	if inspected.Valid {
		t := inspected.Time.UTC()
		s.InspectionCompletedAt = &t
	}
	if clockOut.Valid {
		t := clockOut.Time.UTC()
		s.ClockOutAt = &t
	}
	return &s, nil
}

func translateShiftPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return shift.ErrShiftAlreadyOpen
		case checkViolationCode:
			return shift.ErrInvalidStationID
		}
	}
	return err
}
