package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/inspection"
	pgdb "github.com/ogurasousui/timeclock-kiosk/internal/platform/db/postgres"
)

var ErrInspectionNotFound = errors.New("postgres: inspection not found")

// InspectionRepository は提出された点検票を jsonb で保存します。inspection.Sink を満たします。
type InspectionRepository struct {
	pool pgdb.Queryer
}

// NewInspectionRepository は InspectionRepository を生成します。
func NewInspectionRepository(pool pgdb.Queryer) *InspectionRepository {
	return &InspectionRepository{pool: pool}
}

// SubmitInspection は点検票を保存します。同じ ID の再提出は上書きします。
func (r *InspectionRepository) SubmitInspection(ctx context.Context, rec inspection.Record) error {
	enc, err := inspection.Encode(rec)
	if err != nil {
		return err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err = exec.Exec(ctx, `
        INSERT INTO inspections (id, employee_code, station_id, captured_at, fields, checklist, photos)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE
           SET captured_at = EXCLUDED.captured_at,
               fields = EXCLUDED.fields,
               checklist = EXCLUDED.checklist,
               photos = EXCLUDED.photos
    `,
		rec.ID,
		rec.EmployeeID,
		rec.StationID,
		rec.CapturedAt.UTC(),
		string(enc.Fields),
		string(enc.Checklist),
		string(enc.Photos),
	)
	if err != nil {
		return fmt.Errorf("insert inspection %s: %w", rec.ID, err)
	}
	return nil
}

// FindByID は保存済みの点検票を取得します。
func (r *InspectionRepository) FindByID(ctx context.Context, id string) (*inspection.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, employee_code, station_id, captured_at, fields, checklist, photos
          FROM inspections
         WHERE id = $1
    `, id)

	var (
		rec        inspection.Record
		capturedAt time.Time
		enc        inspection.Encoded
	)
	if err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.StationID, &capturedAt, &enc.Fields, &enc.Checklist, &enc.Photos); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}
	rec.CapturedAt = capturedAt.UTC()
	if err := inspection.Decode(&rec, enc); err != nil {
		return nil, err
	}
	return &rec, nil
}
