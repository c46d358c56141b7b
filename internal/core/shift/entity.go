package shift

import "time"

// Shift は 1 回の出勤から退勤までの記録です。
type Shift struct {
	ID                    string
	EmployeeID            string
	StationID             string
	ClockInAt             time.Time
	ClockInLabel          string
	InspectionCompletedAt *time.Time
	ClockOutAt            *time.Time
}

// IsOpen は退勤前であれば true を返します。
func (s *Shift) IsOpen() bool {
	return s != nil && s.ClockOutAt == nil
}

// Inspected は車両点検が完了していれば true を返します。
func (s *Shift) Inspected() bool {
	return s != nil && s.InspectionCompletedAt != nil
}
