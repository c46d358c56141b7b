package employee

import (
	"fmt"
	"time"
)

// Status は社員の状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee は社員ディレクトリ上の社員エンティティです。
type Employee struct {
	ID           string
	EmployeeCode string
	CardNumber   string
	DisplayName  string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Record は認証結果として端末に返される社員レコードです。
// ClockInTime は開いている勤務があるときだけ設定されます。
type Record struct {
	DisplayName         string
	EmployeeID          string
	ClockedIn           bool
	InspectionCompleted bool
	ClockInTime         string
}

// SourceKind は社員識別子の入力経路です。
type SourceKind int

const (
	SourceCardRead SourceKind = iota + 1
	SourceManualID
)

// Source は認証要求の入力です。
type Source struct {
	Kind  SourceKind
	Value string
}

// CardRead は ID カード読み取りによる入力を表します。cardNumber は空でも構いません。
func CardRead(cardNumber string) Source {
	return Source{Kind: SourceCardRead, Value: cardNumber}
}

// ManualID はテンキーで入力された社員 ID を表します。
func ManualID(id string) Source {
	return Source{Kind: SourceManualID, Value: id}
}

func (s Source) String() string {
	switch s.Kind {
	case SourceCardRead:
		return "card"
	case SourceManualID:
		return fmt.Sprintf("manual(%s)", s.Value)
	default:
		return "unknown"
	}
}
