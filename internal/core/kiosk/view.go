package kiosk

// ViewState は表示中の画面です。常にいずれか 1 つだけが表示されます。
type ViewState string

const (
	ViewLogin      ViewState = "login"
	ViewIDEntry    ViewState = "id_entry"
	ViewInspection ViewState = "inspection"
	ViewTimesheet  ViewState = "timesheet"
	ViewClockOut   ViewState = "clock_out"
	ViewComplete   ViewState = "complete"
)

// IsValid は定義済みの画面なら true を返します。
func (v ViewState) IsValid() bool {
	switch v {
	case ViewLogin, ViewIDEntry, ViewInspection, ViewTimesheet, ViewClockOut, ViewComplete:
		return true
	default:
		return false
	}
}

// IsForm は点検票またはタイムシートの画面なら true を返します。
func (v ViewState) IsForm() bool {
	return v == ViewInspection || v == ViewTimesheet
}
