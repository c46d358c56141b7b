package inspection

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Check は 1 項目の運行前・運行後チェック状態です。
type Check struct {
	PreTrip  bool
	PostTrip bool
}

// Toggle は指定フェーズのチェックを反転した Check を返します。
func (c Check) Toggle(p Phase) Check {
	switch p {
	case PhasePreTrip:
		c.PreTrip = !c.PreTrip
	case PhasePostTrip:
		c.PostTrip = !c.PostTrip
	}
	return c
}

// BrakeCheck はブレーキ項目のチェック状態と空気圧 (PSI) です。
type BrakeCheck struct {
	Check
	Reading *float64
}

// ImageRef は撮影済み写真への参照です。
type ImageRef string

// Record は車両点検票 (DVI) 1 件分の内容です。
// 各 With メソッドは元の Record を変更せず、1 項目だけ差し替えた新しい Record を返します。
type Record struct {
	ID         string
	EmployeeID string
	StationID  string
	Fields     map[Field]string
	Exterior   map[ExteriorItem]Check
	Interior   map[InteriorItem]Check
	Brakes     map[BrakeItem]BrakeCheck
	Photos     []ImageRef
	CapturedAt time.Time
}

// NewRecord は全項目が未チェックの Record を生成します。日付欄には today を設定します。
func NewRecord(employeeID, stationID string, today time.Time) Record {
	rec := Record{
		EmployeeID: employeeID,
		StationID:  stationID,
		Fields:     make(map[Field]string, len(Fields)),
		Exterior:   make(map[ExteriorItem]Check, len(ExteriorItems)),
		Interior:   make(map[InteriorItem]Check, len(InteriorItems)),
		Brakes:     make(map[BrakeItem]BrakeCheck, len(BrakeItems)),
	}
	for _, f := range Fields {
		rec.Fields[f] = ""
	}
	rec.Fields[FieldDate] = today.Format(dateLayout)
	for _, item := range ExteriorItems {
		rec.Exterior[item] = Check{}
	}
	for _, item := range InteriorItems {
		rec.Interior[item] = Check{}
	}
	for _, item := range BrakeItems {
		rec.Brakes[item] = BrakeCheck{}
	}
	return rec
}

// WithToggled は group/item の指定フェーズを反転した Record を返します。
func (r Record) WithToggled(group Group, item string, phase Phase) (Record, error) {
	if !isValidPhase(phase) {
		return r, fmt.Errorf("%q: %w", phase, ErrInvalidPhase)
	}

	switch group {
	case GroupExterior:
		key := ExteriorItem(item)
		if !isExteriorItem(key) {
			return r, fmt.Errorf("%s/%s: %w", group, item, ErrUnknownItem)
		}
		r.Exterior = replaced(r.Exterior, key, r.Exterior[key].Toggle(phase))
	case GroupInterior:
		key := InteriorItem(item)
		if !isInteriorItem(key) {
			return r, fmt.Errorf("%s/%s: %w", group, item, ErrUnknownItem)
		}
		r.Interior = replaced(r.Interior, key, r.Interior[key].Toggle(phase))
	case GroupBrake:
		key := BrakeItem(item)
		if !isBrakeItem(key) {
			return r, fmt.Errorf("%s/%s: %w", group, item, ErrUnknownItem)
		}
		current := r.Brakes[key]
		current.Check = current.Check.Toggle(phase)
		r.Brakes = replaced(r.Brakes, key, current)
	default:
		return r, fmt.Errorf("%q: %w", group, ErrUnknownGroup)
	}
	return r, nil
}

// WithBrakeReading はブレーキ項目の計測値を差し替えた Record を返します。nil で値を消去します。
func (r Record) WithBrakeReading(item BrakeItem, reading *float64) (Record, error) {
	if !isBrakeItem(item) {
		return r, fmt.Errorf("%s/%s: %w", GroupBrake, item, ErrUnknownItem)
	}
	if !item.HasReading() {
		return r, fmt.Errorf("%s: %w", item, ErrReadingNotAllowed)
	}

	current := r.Brakes[item]
	if reading == nil {
		current.Reading = nil
	} else {
		v := *reading
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return r, fmt.Errorf("%s=%v: %w", item, v, ErrInvalidReading)
		}
		current.Reading = &v
	}
	r.Brakes = replaced(r.Brakes, item, current)
	return r, nil
}

// WithField は自由記述欄を差し替えた Record を返します。
func (r Record) WithField(field Field, value string) (Record, error) {
	if !isField(field) {
		return r, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	r.Fields = replaced(r.Fields, field, value)
	return r, nil
}

// WithPhoto は写真参照を追加した Record を返します。
func (r Record) WithPhoto(ref ImageRef) Record {
	photos := make([]ImageRef, 0, len(r.Photos)+1)
	photos = append(photos, r.Photos...)
	r.Photos = append(photos, ref)
	return r
}

// CheckedCount はいずれかのフェーズでチェックされた項目数を返します。
func (r Record) CheckedCount() int {
	count := 0
	for _, c := range r.Exterior {
		if c.PreTrip || c.PostTrip {
			count++
		}
	}
	for _, c := range r.Interior {
		if c.PreTrip || c.PostTrip {
			count++
		}
	}
	for _, c := range r.Brakes {
		if c.PreTrip || c.PostTrip {
			count++
		}
	}
	return count
}

func replaced[K comparable, V any](m map[K]V, key K, value V) map[K]V {
	next := make(map[K]V, len(m))
	for k, v := range m {
		next[k] = v
	}
	next[key] = value
	return next
}
