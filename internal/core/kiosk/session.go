package kiosk

import "fmt"

// Session は現在操作中の社員です。Login 画面では常に空です。
type Session struct {
	DisplayName         string
	EmployeeID          string
	ClockedIn           bool
	InspectionCompleted bool
	ClockInTimestamp    string
}

// IsEmpty は誰も認証されていなければ true を返します。
func (s Session) IsEmpty() bool {
	return s == Session{}
}

// Valid は点検完了なら出勤済みであるという不変条件を満たすか返します。
func (s Session) Valid() bool {
	return !s.InspectionCompleted || s.ClockedIn
}

// Banner は画面上部に表示する社員情報です。
func (s Session) Banner() string {
	if s.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%s - %s - Clocked In: %s", s.DisplayName, s.EmployeeID, s.ClockInTimestamp)
}
