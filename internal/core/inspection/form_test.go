package inspection

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type recordingSink struct {
	records []Record
	err     error
}

func (s *recordingSink) SubmitInspection(_ context.Context, rec Record) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

type stubCapturer struct {
	ref ImageRef
	err error
}

func (s stubCapturer) CapturePhoto(context.Context) (ImageRef, error) {
	return s.ref, s.err
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestNewRecord_AllItemsUnchecked(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 10, 18, 9, 0, 0, 0, time.Local)
	rec := NewRecord("4521", "KIOSK-001", today)

	if len(rec.Exterior) != 10 || len(rec.Interior) != 22 || len(rec.Brakes) != 8 {
		t.Fatalf("unexpected group sizes: %d/%d/%d", len(rec.Exterior), len(rec.Interior), len(rec.Brakes))
	}
	if rec.CheckedCount() != 0 {
		t.Fatalf("expected no checked items, got %d", rec.CheckedCount())
	}
	if rec.Fields[FieldDate] != "2026-10-18" {
		t.Fatalf("expected date field to default to today, got %q", rec.Fields[FieldDate])
	}
	for _, item := range BrakeItems {
		if _, ok := Labels[string(item)]; !ok {
			t.Fatalf("missing label for %s", item)
		}
	}
}

func TestRecord_WithToggled_DoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	original := NewRecord("4521", "KIOSK-001", time.Now())

	next, err := original.WithToggled(GroupExterior, string(ExteriorTiresWheels), PhasePreTrip)
	if err != nil {
		t.Fatalf("WithToggled returned error: %v", err)
	}

	if !next.Exterior[ExteriorTiresWheels].PreTrip {
		t.Fatalf("expected pre-trip to be toggled on")
	}
	if next.Exterior[ExteriorTiresWheels].PostTrip {
		t.Fatalf("post-trip should be unaffected")
	}
	if original.Exterior[ExteriorTiresWheels].PreTrip {
		t.Fatalf("original record must not change")
	}

	back, err := next.WithToggled(GroupExterior, string(ExteriorTiresWheels), PhasePreTrip)
	if err != nil {
		t.Fatalf("WithToggled returned error: %v", err)
	}
	if back.Exterior[ExteriorTiresWheels].PreTrip {
		t.Fatalf("expected second toggle to clear the check")
	}
}

func TestRecord_WithToggled_Errors(t *testing.T) {
	t.Parallel()

	rec := NewRecord("4521", "KIOSK-001", time.Now())

	tests := []struct {
		name  string
		group Group
		item  string
		phase Phase
		want  error
	}{
		{name: "unknown group", group: Group("roof"), item: "x", phase: PhasePreTrip, want: ErrUnknownGroup},
		{name: "unknown exterior item", group: GroupExterior, item: "radio", phase: PhasePreTrip, want: ErrUnknownItem},
		{name: "unknown interior item", group: GroupInterior, item: "tires-wheels", phase: PhasePostTrip, want: ErrUnknownItem},
		{name: "unknown brake item", group: GroupBrake, item: "abs", phase: PhasePostTrip, want: ErrUnknownItem},
		{name: "invalid phase", group: GroupInterior, item: string(InteriorRadio), phase: Phase("mid_trip"), want: ErrInvalidPhase},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := rec.WithToggled(tt.group, tt.item, tt.phase); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRecord_WithBrakeReading(t *testing.T) {
	t.Parallel()

	rec := NewRecord("4521", "KIOSK-001", time.Now())

	next, err := rec.WithBrakeReading(BrakeCutInPressure, floatPtr(105))
	if err != nil {
		t.Fatalf("WithBrakeReading returned error: %v", err)
	}
	if got := next.Brakes[BrakeCutInPressure].Reading; got == nil || *got != 105 {
		t.Fatalf("unexpected reading: %v", got)
	}
	if rec.Brakes[BrakeCutInPressure].Reading != nil {
		t.Fatalf("original record must not change")
	}

	cleared, err := next.WithBrakeReading(BrakeCutInPressure, nil)
	if err != nil {
		t.Fatalf("clearing reading returned error: %v", err)
	}
	if cleared.Brakes[BrakeCutInPressure].Reading != nil {
		t.Fatalf("expected reading to be cleared")
	}

	if _, err := rec.WithBrakeReading(BrakeParkBrakeHold, floatPtr(10)); !errors.Is(err, ErrReadingNotAllowed) {
		t.Fatalf("expected ErrReadingNotAllowed, got %v", err)
	}
	if _, err := rec.WithBrakeReading(BrakeCutOutPressure, floatPtr(-1)); !errors.Is(err, ErrInvalidReading) {
		t.Fatalf("expected ErrInvalidReading, got %v", err)
	}
}

func TestRecord_WithFieldAndPhoto(t *testing.T) {
	t.Parallel()

	rec := NewRecord("4521", "KIOSK-001", time.Now())

	next, err := rec.WithField(FieldBusNumber, "1207")
	if err != nil {
		t.Fatalf("WithField returned error: %v", err)
	}
	if next.Fields[FieldBusNumber] != "1207" || rec.Fields[FieldBusNumber] != "" {
		t.Fatalf("unexpected field values: next=%q original=%q", next.Fields[FieldBusNumber], rec.Fields[FieldBusNumber])
	}

	if _, err := rec.WithField(Field("favourite_color"), "red"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	withPhoto := next.WithPhoto("photo://1")
	if len(withPhoto.Photos) != 1 || len(next.Photos) != 0 {
		t.Fatalf("unexpected photos: %v / %v", withPhoto.Photos, next.Photos)
	}
}

func TestForm_SubmitNotifiesOwnerOnce(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

	var notified []Record
	form := NewForm(NewRecord("4521", "KIOSK-001", now), sink, nil, stubClock{now: now}, func(_ context.Context, rec Record) {
		notified = append(notified, rec)
	})
	form.newID = func() string { return "insp-1" }

	if err := form.ToggleCheck(GroupBrake, string(BrakeParkBrakeHold), PhasePostTrip); err != nil {
		t.Fatalf("ToggleCheck returned error: %v", err)
	}

	rec, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if rec.ID != "insp-1" || !rec.CapturedAt.Equal(now) {
		t.Fatalf("unexpected submitted record: id=%s captured_at=%v", rec.ID, rec.CapturedAt)
	}
	if len(sink.records) != 1 || len(notified) != 1 {
		t.Fatalf("expected one persisted record and one notification, got %d/%d", len(sink.records), len(notified))
	}
	if !notified[0].Brakes[BrakeParkBrakeHold].PostTrip {
		t.Fatalf("notification should carry the full record")
	}

	if _, err := form.Submit(context.Background()); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
	if err := form.SetField(FieldTechComments, "late"); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected edits after submit to fail, got %v", err)
	}
	if len(notified) != 1 {
		t.Fatalf("owner must be notified exactly once, got %d", len(notified))
	}
}

func TestForm_SubmitSinkFailureKeepsRecord(t *testing.T) {
	t.Parallel()

	boom := errors.New("storage offline")
	sink := &recordingSink{err: boom}
	calls := 0
	form := NewForm(NewRecord("4521", "KIOSK-001", time.Now()), sink, nil, nil, func(context.Context, Record) { calls++ })

	if err := form.SetField(FieldOperatorName, "Jane Operator"); err != nil {
		t.Fatalf("SetField returned error: %v", err)
	}

	if _, err := form.Submit(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if calls != 0 || form.Submitted() {
		t.Fatalf("failed submit must not notify or mark submitted")
	}
	firstID := form.Record().ID

	sink.err = nil
	rec, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	if rec.ID != firstID {
		t.Fatalf("retry should reuse id %s, got %s", firstID, rec.ID)
	}
	if rec.Fields[FieldOperatorName] != "Jane Operator" || calls != 1 {
		t.Fatalf("expected record to survive the failed attempt")
	}
}

func TestForm_AddPhoto(t *testing.T) {
	t.Parallel()

	form := NewForm(NewRecord("4521", "KIOSK-001", time.Now()), nil, stubCapturer{ref: "photo://abc"}, nil, nil)

	ref, err := form.AddPhoto(context.Background())
	if err != nil {
		t.Fatalf("AddPhoto returned error: %v", err)
	}
	if ref != "photo://abc" || len(form.Record().Photos) != 1 {
		t.Fatalf("unexpected photo state: %s %v", ref, form.Record().Photos)
	}

	cancelled := NewForm(NewRecord("4521", "KIOSK-001", time.Now()), nil, stubCapturer{err: ErrCaptureCancelled}, nil, nil)
	if _, err := cancelled.AddPhoto(context.Background()); !errors.Is(err, ErrCaptureCancelled) {
		t.Fatalf("expected ErrCaptureCancelled, got %v", err)
	}
	if len(cancelled.Record().Photos) != 0 {
		t.Fatalf("cancelled capture must not attach a photo")
	}

	noCamera := NewForm(NewRecord("4521", "KIOSK-001", time.Now()), nil, nil, nil, nil)
	if _, err := noCamera.AddPhoto(context.Background()); err == nil {
		t.Fatalf("expected error without a capturer")
	}
}

func TestStubCapturer(t *testing.T) {
	t.Parallel()

	ref, err := NewStubCapturer().CapturePhoto(context.Background())
	if err != nil {
		t.Fatalf("CapturePhoto returned error: %v", err)
	}
	if len(ref) <= len("photo://") {
		t.Fatalf("unexpected ref: %q", ref)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStubCapturer().CapturePhoto(ctx); !errors.Is(err, ErrCaptureCancelled) {
		t.Fatalf("expected ErrCaptureCancelled, got %v", err)
	}
}
