package shift

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository はプロセス内だけで勤務を保持する Repository 実装です。
// 永続化先を持たない端末で利用します。
type MemoryRepository struct {
	mu     sync.Mutex
	shifts map[string]*Shift
}

// NewMemoryRepository は MemoryRepository を生成します。
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{shifts: make(map[string]*Shift)}
}

func (r *MemoryRepository) CreateShift(_ context.Context, s *Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.shifts {
		if existing.EmployeeID == s.EmployeeID && existing.IsOpen() {
			return ErrShiftAlreadyOpen
		}
	}
	r.shifts[s.ID] = cloneShift(s)
	return nil
}

func (r *MemoryRepository) FindOpenShift(_ context.Context, employeeID string) (*Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.shifts {
		if existing.EmployeeID == employeeID && existing.IsOpen() {
			return cloneShift(existing), nil
		}
	}
	return nil, ErrShiftNotFound
}

func (r *MemoryRepository) MarkShiftInspected(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.shifts[id]
	if !ok || !existing.IsOpen() {
		return ErrShiftNotFound
	}
	existing.InspectionCompletedAt = &at
	return nil
}

func (r *MemoryRepository) CloseShift(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.shifts[id]
	if !ok || !existing.IsOpen() {
		return ErrShiftNotFound
	}
	existing.ClockOutAt = &at
	return nil
}

func cloneShift(s *Shift) *Shift {
	if s == nil {
		return nil
	}
	clone := *s
	if s.InspectionCompletedAt != nil {
		at := *s.InspectionCompletedAt
		clone.InspectionCompletedAt = &at
	}
	if s.ClockOutAt != nil {
		at := *s.ClockOutAt
		clone.ClockOutAt = &at
	}
	return &clone
}
