package timesheet

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotClockedIn = errors.New("timesheet: employee is not clocked in")

// View はタイムシート画面の読み取り専用表示内容です。出勤時刻をキーにします。
type View struct {
	StationID    string
	EmployeeName string
	EmployeeID   string
	ClockInTime  string
}

// NewView は出勤済みの社員についてタイムシート表示を生成します。
func NewView(stationID, employeeName, employeeID, clockInTime string) (*View, error) {
	if strings.TrimSpace(employeeID) == "" || strings.TrimSpace(clockInTime) == "" {
		return nil, ErrNotClockedIn
	}
	return &View{
		StationID:    stationID,
		EmployeeName: employeeName,
		EmployeeID:   employeeID,
		ClockInTime:  clockInTime,
	}, nil
}

// Title はタイムシートの見出しです。
func (v *View) Title() string {
	return fmt.Sprintf("Timesheet - %s (%s)", v.EmployeeName, v.EmployeeID)
}
