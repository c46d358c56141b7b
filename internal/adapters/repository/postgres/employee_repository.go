package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/employee"
	pgdb "github.com/ogurasousui/timeclock-kiosk/internal/platform/db/postgres"
)

// EmployeeRepository は PostgreSQL 上の社員ディレクトリを参照します。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const selectEmployeeColumns = `
        SELECT id, employee_code, card_number, display_name, status, created_at, updated_at
          FROM employees`

// FindByCode は社員コードで社員を取得します。
func (r *EmployeeRepository) FindByCode(ctx context.Context, employeeCode string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, selectEmployeeColumns+`
         WHERE employee_code = $1
    `, employeeCode)

	return scanEmployee(row)
}

// FindByCardNumber は ID カード番号で社員を取得します。
func (r *EmployeeRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, selectEmployeeColumns+`
         WHERE card_number = $1
    `, cardNumber)

	return scanEmployee(row)
}

// Upsert は社員コードをキーに社員を登録・更新します。初期データ投入に使います。
func (r *EmployeeRepository) Upsert(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	status := e.Status
	if status == "" {
		status = employee.StatusActive
	}
	now := e.UpdatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (employee_code, card_number, display_name, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)
        ON CONFLICT (employee_code) DO UPDATE
           SET card_number = EXCLUDED.card_number,
               display_name = EXCLUDED.display_name,
               status = EXCLUDED.status,
               updated_at = EXCLUDED.updated_at
        RETURNING id, employee_code, card_number, display_name, status, created_at, updated_at
    `,
		e.EmployeeCode,
		nullableString(e.CardNumber),
		e.DisplayName,
		string(status),
		now,
	)

	saved, err := scanEmployee(row)
	if err != nil {
		return nil, fmt.Errorf("upsert employee %s: %w", e.EmployeeCode, err)
	}
	return saved, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id          string
		code        string
		cardNumber  sql.NullString
		displayName string
		status      string
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &code, &cardNumber, &displayName, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}

	return &employee.Employee{
		ID:           id,
		EmployeeCode: code,
		CardNumber:   cardNumber.String,
		DisplayName:  displayName,
		Status:       employee.Status(status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
