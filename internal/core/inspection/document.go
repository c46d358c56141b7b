package inspection

import (
	"encoding/json"
	"fmt"
)

type checkDoc struct {
	PreTrip  bool `json:"pre_trip"`
	PostTrip bool `json:"post_trip"`
}

type brakeDoc struct {
	PreTrip  bool     `json:"pre_trip"`
	PostTrip bool     `json:"post_trip"`
	Reading  *float64 `json:"reading,omitempty"`
}

type checklistDoc struct {
	Exterior map[string]checkDoc `json:"exterior"`
	Interior map[string]checkDoc `json:"interior"`
	Brakes   map[string]brakeDoc `json:"brakes"`
}

// Encoded は Record を保存用の JSON 列に分解したものです。
type Encoded struct {
	Fields    []byte
	Checklist []byte
	Photos    []byte
}

// Encode は Record を JSON 列に変換します。
func Encode(rec Record) (Encoded, error) {
	fields := make(map[string]string, len(rec.Fields))
	for k, v := range rec.Fields {
		fields[string(k)] = v
	}

	doc := checklistDoc{
		Exterior: make(map[string]checkDoc, len(rec.Exterior)),
		Interior: make(map[string]checkDoc, len(rec.Interior)),
		Brakes:   make(map[string]brakeDoc, len(rec.Brakes)),
	}
	for item, c := range rec.Exterior {
		doc.Exterior[string(item)] = checkDoc{PreTrip: c.PreTrip, PostTrip: c.PostTrip}
	}
	for item, c := range rec.Interior {
		doc.Interior[string(item)] = checkDoc{PreTrip: c.PreTrip, PostTrip: c.PostTrip}
	}
	for item, c := range rec.Brakes {
		doc.Brakes[string(item)] = brakeDoc{PreTrip: c.PreTrip, PostTrip: c.PostTrip, Reading: c.Reading}
	}

	photos := make([]string, 0, len(rec.Photos))
	for _, p := range rec.Photos {
		photos = append(photos, string(p))
	}

	var (
		out Encoded
		err error
	)
	if out.Fields, err = json.Marshal(fields); err != nil {
		return Encoded{}, fmt.Errorf("inspection: encode fields: %w", err)
	}
	if out.Checklist, err = json.Marshal(doc); err != nil {
		return Encoded{}, fmt.Errorf("inspection: encode checklist: %w", err)
	}
	if out.Photos, err = json.Marshal(photos); err != nil {
		return Encoded{}, fmt.Errorf("inspection: encode photos: %w", err)
	}
	return out, nil
}

// Decode は保存済みの JSON 列を rec に展開します。ID などのスカラー項目は呼び出し側で設定します。
func Decode(rec *Record, enc Encoded) error {
	var fields map[string]string
	if err := json.Unmarshal(enc.Fields, &fields); err != nil {
		return fmt.Errorf("inspection: decode fields: %w", err)
	}
	var doc checklistDoc
	if err := json.Unmarshal(enc.Checklist, &doc); err != nil {
		return fmt.Errorf("inspection: decode checklist: %w", err)
	}
	var photos []string
	if len(enc.Photos) > 0 {
		if err := json.Unmarshal(enc.Photos, &photos); err != nil {
			return fmt.Errorf("inspection: decode photos: %w", err)
		}
	}

	rec.Fields = make(map[Field]string, len(fields))
	for k, v := range fields {
		rec.Fields[Field(k)] = v
	}
	rec.Exterior = make(map[ExteriorItem]Check, len(doc.Exterior))
	for k, v := range doc.Exterior {
		rec.Exterior[ExteriorItem(k)] = Check{PreTrip: v.PreTrip, PostTrip: v.PostTrip}
	}
	rec.Interior = make(map[InteriorItem]Check, len(doc.Interior))
	for k, v := range doc.Interior {
		rec.Interior[InteriorItem(k)] = Check{PreTrip: v.PreTrip, PostTrip: v.PostTrip}
	}
	rec.Brakes = make(map[BrakeItem]BrakeCheck, len(doc.Brakes))
	for k, v := range doc.Brakes {
		rec.Brakes[BrakeItem(k)] = BrakeCheck{Check: Check{PreTrip: v.PreTrip, PostTrip: v.PostTrip}, Reading: v.Reading}
	}
	rec.Photos = make([]ImageRef, 0, len(photos))
	for _, p := range photos {
		rec.Photos = append(rec.Photos, ImageRef(p))
	}
	return nil
}
