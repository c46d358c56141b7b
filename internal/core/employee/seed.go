package employee

import (
	"context"
	"fmt"
	"strings"
)

// Writer は社員ディレクトリへ社員を登録・更新します。
type Writer interface {
	Upsert(ctx context.Context, e *Employee) (*Employee, error)
}

// Seed は社員コードをキーに seeds を登録します。既存の社員は上書きされます。
func Seed(ctx context.Context, w Writer, seeds []Employee) (int, error) {
	n := 0
	for i := range seeds {
		e := seeds[i]
		e.EmployeeCode = strings.TrimSpace(e.EmployeeCode)
		if e.EmployeeCode == "" {
			return n, fmt.Errorf("seed %d: %w", i, ErrInvalidIdentifier)
		}
		if e.Status == "" {
			e.Status = StatusActive
		}
		if _, err := w.Upsert(ctx, &e); err != nil {
			return n, fmt.Errorf("seed %s: %w", e.EmployeeCode, err)
		}
		n++
	}
	return n, nil
}
