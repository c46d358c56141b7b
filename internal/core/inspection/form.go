package inspection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Sink は提出された点検票の永続化先です。
type Sink interface {
	SubmitInspection(ctx context.Context, rec Record) error
}

// PhotoCapturer は写真撮影の境界です。利用者が撮影を取り消した場合は ErrCaptureCancelled を返します。
type PhotoCapturer interface {
	CapturePhoto(ctx context.Context) (ImageRef, error)
}

// SubmittedFunc は点検票の提出完了を所有者へ通知するコールバックです。
type SubmittedFunc func(ctx context.Context, rec Record)

// Form は 1 セッション分の点検票入力を保持します。
// 端末の画面状態は知らず、提出時に onSubmitted を 1 度だけ呼び出します。
type Form struct {
	record      Record
	sink        Sink
	photos      PhotoCapturer
	clock       Clock
	newID       func() string
	onSubmitted SubmittedFunc
	submitted   bool
}

// NewForm は Form を生成します。
func NewForm(rec Record, sink Sink, photos PhotoCapturer, clock Clock, onSubmitted SubmittedFunc) *Form {
	if clock == nil {
		clock = realClock{}
	}
	return &Form{
		record:      rec,
		sink:        sink,
		photos:      photos,
		clock:       clock,
		newID:       uuid.NewString,
		onSubmitted: onSubmitted,
	}
}

// Record は現在の入力内容を返します。
func (f *Form) Record() Record {
	return f.record
}

// Submitted は提出済みなら true を返します。
func (f *Form) Submitted() bool {
	return f.submitted
}

// ToggleCheck はチェック項目を反転します。
func (f *Form) ToggleCheck(group Group, item string, phase Phase) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	next, err := f.record.WithToggled(group, item, phase)
	if err != nil {
		return err
	}
	f.record = next
	return nil
}

// SetBrakeReading はブレーキ項目の計測値を設定します。
func (f *Form) SetBrakeReading(item BrakeItem, reading *float64) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	next, err := f.record.WithBrakeReading(item, reading)
	if err != nil {
		return err
	}
	f.record = next
	return nil
}

// SetField は自由記述欄を設定します。
func (f *Form) SetField(field Field, value string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	next, err := f.record.WithField(field, value)
	if err != nil {
		return err
	}
	f.record = next
	return nil
}

// AddPhoto は写真を撮影して点検票に添付します。
func (f *Form) AddPhoto(ctx context.Context) (ImageRef, error) {
	if f.submitted {
		return "", ErrAlreadySubmitted
	}
	if f.photos == nil {
		return "", fmt.Errorf("inspection: photo capture is not configured")
	}

	ref, err := f.photos.CapturePhoto(ctx)
	if err != nil {
		return "", err
	}
	f.record = f.record.WithPhoto(ref)
	return ref, nil
}

// Submit は撮影時刻を付けた点検票を Sink に渡し、成功したら所有者へ通知します。
// Sink が失敗した場合は入力内容と ID を保持したままエラーを返すので、同じ ID で再提出できます。
func (f *Form) Submit(ctx context.Context) (Record, error) {
	if f.submitted {
		return f.record, ErrAlreadySubmitted
	}

	if f.record.ID == "" {
		f.record.ID = f.newID()
	}
	rec := f.record
	rec.CapturedAt = f.clock.Now().UTC()

	if f.sink != nil {
		if err := f.sink.SubmitInspection(ctx, rec); err != nil {
			return f.record, fmt.Errorf("inspection: submit: %w", err)
		}
	}

	f.record = rec
	f.submitted = true
	if f.onSubmitted != nil {
		f.onSubmitted(ctx, rec)
	}
	return rec, nil
}
