package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
)

type fakeEmployeeRepo struct {
	employees []*Employee
	calls     []string
}

func (r *fakeEmployeeRepo) FindByCode(_ context.Context, code string) (*Employee, error) {
	r.calls = append(r.calls, "code:"+code)
	for _, emp := range r.employees {
		if emp.EmployeeCode == code {
			clone := *emp
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeEmployeeRepo) FindByCardNumber(_ context.Context, card string) (*Employee, error) {
	r.calls = append(r.calls, "card:"+card)
	for _, emp := range r.employees {
		if emp.CardNumber == card {
			clone := *emp
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

type fakeShiftFinder struct {
	open map[string]*shift.Shift
	err  error
}

func (f *fakeShiftFinder) FindOpen(_ context.Context, employeeID string) (*shift.Shift, error) {
	if f.err != nil {
		return nil, f.err
	}
	if sh, ok := f.open[employeeID]; ok {
		return sh, nil
	}
	return nil, shift.ErrShiftNotFound
}

type countingTx struct {
	readOnly int
}

func (c *countingTx) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	c.readOnly++
	return fn(ctx)
}

func (c *countingTx) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func seededRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: []*Employee{
		{ID: "e-1", EmployeeCode: "4521", CardNumber: "CARD-9", DisplayName: "Jane Operator", Status: StatusActive},
		{ID: "e-2", EmployeeCode: "7000", DisplayName: "Former Driver", Status: StatusInactive},
	}}
}

func TestService_Authenticate_ManualID(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	tx := &countingTx{}
	svc := NewService(repo, &fakeShiftFinder{}, tx)

	rec, err := svc.Authenticate(context.Background(), ManualID(" 4521 "))
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}

	if rec.DisplayName != "Jane Operator" || rec.EmployeeID != "4521" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.ClockedIn || rec.InspectionCompleted || rec.ClockInTime != "" {
		t.Fatalf("expected no shift state, got %+v", rec)
	}
	if tx.readOnly != 1 {
		t.Fatalf("expected lookup inside read-only transaction, got %d", tx.readOnly)
	}
}

func TestService_Authenticate_CardReadUsesCardNumber(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	svc := NewService(repo, nil, nil)

	rec, err := svc.Authenticate(context.Background(), CardRead("CARD-9"))
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if rec.EmployeeID != "4521" {
		t.Fatalf("expected employee code from card lookup, got %s", rec.EmployeeID)
	}
	if len(repo.calls) != 1 || repo.calls[0] != "card:CARD-9" {
		t.Fatalf("unexpected repository calls: %v", repo.calls)
	}
}

func TestService_Authenticate_FillsOpenShift(t *testing.T) {
	t.Parallel()

	inspectedAt := time.Date(2026, 1, 1, 7, 0, 0, 0, time.Local)
	shifts := &fakeShiftFinder{open: map[string]*shift.Shift{
		"4521": {ID: "s-1", EmployeeID: "4521", ClockInLabel: "06:45:12", InspectionCompletedAt: &inspectedAt},
	}}
	svc := NewService(seededRepo(), shifts, nil)

	rec, err := svc.Authenticate(context.Background(), ManualID("4521"))
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if !rec.ClockedIn || !rec.InspectionCompleted || rec.ClockInTime != "06:45:12" {
		t.Fatalf("expected open shift state, got %+v", rec)
	}
}

func TestService_Authenticate_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(seededRepo(), nil, nil)

	tests := []struct {
		name string
		src  Source
	}{
		{name: "unknown code", src: ManualID("1234")},
		{name: "unknown card", src: CardRead("CARD-0")},
		{name: "inactive employee", src: ManualID("7000")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Authenticate(context.Background(), tt.src); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestService_Authenticate_InvalidIdentifier(t *testing.T) {
	t.Parallel()

	svc := NewService(seededRepo(), nil, nil)

	if _, err := svc.Authenticate(context.Background(), ManualID("12a4")); !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier for non-digit id, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), CardRead("")); !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier for empty card, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), Source{}); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestService_Authenticate_ShiftLookupFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	svc := NewService(seededRepo(), &fakeShiftFinder{err: boom}, nil)

	if _, err := svc.Authenticate(context.Background(), ManualID("4521")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped shift error, got %v", err)
	}
}

func TestStubAuthenticator_PlaceholderIdentities(t *testing.T) {
	t.Parallel()

	stub := NewStubAuthenticator(nil)

	card, err := stub.Authenticate(context.Background(), CardRead(""))
	if err != nil {
		t.Fatalf("card login returned error: %v", err)
	}
	if card.DisplayName != StubCardDisplayName || card.EmployeeID != StubCardEmployeeID {
		t.Fatalf("unexpected card identity: %+v", card)
	}

	manual, err := stub.Authenticate(context.Background(), ManualID("4521"))
	if err != nil {
		t.Fatalf("manual login returned error: %v", err)
	}
	if manual.DisplayName != StubManualDisplayName || manual.EmployeeID != "4521" {
		t.Fatalf("unexpected manual identity: %+v", manual)
	}
	if manual.ClockedIn || manual.InspectionCompleted {
		t.Fatalf("stub without shifts should report fresh session: %+v", manual)
	}

	if _, err := stub.Authenticate(context.Background(), ManualID("  ")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty id, got %v", err)
	}
}

func TestStubAuthenticator_UsesShiftFinder(t *testing.T) {
	t.Parallel()

	shifts := &fakeShiftFinder{open: map[string]*shift.Shift{
		StubCardEmployeeID: {ID: "s-1", EmployeeID: StubCardEmployeeID, ClockInLabel: "05:00:00"},
	}}
	stub := NewStubAuthenticator(shifts)

	rec, err := stub.Authenticate(context.Background(), CardRead(""))
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if !rec.ClockedIn || rec.InspectionCompleted || rec.ClockInTime != "05:00:00" {
		t.Fatalf("expected clocked-in record without inspection, got %+v", rec)
	}
}
