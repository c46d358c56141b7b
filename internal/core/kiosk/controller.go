package kiosk

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ogurasousui/timeclock-kiosk/internal/core/clockface"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/employee"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/inspection"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/timesheet"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultStationID  = "KIOSK-001"
	DefaultResetDelay = 3 * time.Second
	DefaultClockTick  = time.Second
)

// 画面に表示するお知らせ文です。
const (
	NoticeEmployeeNotFound = "Employee ID not recognized. Please try again."
	NoticeAuthUnavailable  = "Unable to verify employee right now. Please try again."
	NoticeSubmitFailed     = "Inspection could not be saved. Please try again."
	NoticePhotoCancelled   = "Photo capture cancelled."
	NoticePhotoFailed      = "Photo capture failed. You can retry or continue without photos."
	NoticeShiftNotRecorded = "Clock event could not be recorded. Please notify your supervisor."
)

// Config は端末ごとの設定です。
type Config struct {
	StationID  string
	ResetDelay time.Duration
	ClockTick  time.Duration
}

// ShiftRecorder は出退勤の記録先です。
type ShiftRecorder interface {
	ClockIn(ctx context.Context, in shift.ClockInInput) (*shift.Shift, error)
	MarkInspected(ctx context.Context, employeeID string) error
	ClockOut(ctx context.Context, employeeID string) (*shift.Shift, error)
}

// Dependencies は Controller が利用する外部協調者です。Authenticator 以外は省略できます。
type Dependencies struct {
	Authenticator employee.Authenticator
	Sink          inspection.Sink
	Photos        inspection.PhotoCapturer
	Shifts        ShiftRecorder
	Clock         clockface.Clock
	Scheduler     Scheduler
	Logger        *log.Logger
}

// UseCase は端末操作の公開インターフェースです。
type UseCase interface {
	State(ctx context.Context) State
	CardLogin(ctx context.Context, cardNumber string) (State, error)
	StartManualEntry(ctx context.Context) (State, error)
	PressDigit(ctx context.Context, digit string) (State, error)
	Backspace(ctx context.Context) (State, error)
	ClearEntry(ctx context.Context) (State, error)
	CancelEntry(ctx context.Context) (State, error)
	SubmitEntry(ctx context.Context) (State, error)
	SwitchForm(ctx context.Context) (State, error)
	ToggleCheck(ctx context.Context, group inspection.Group, item string, phase inspection.Phase) (State, error)
	SetBrakeReading(ctx context.Context, item inspection.BrakeItem, reading *float64) (State, error)
	SetField(ctx context.Context, field inspection.Field, value string) (State, error)
	AddPhoto(ctx context.Context) (State, error)
	SubmitInspection(ctx context.Context) (State, error)
	ClockOut(ctx context.Context) (State, error)
	Timesheet(ctx context.Context) (*timesheet.View, error)
	Reset(ctx context.Context) State
	WatchClock(ctx context.Context) <-chan clockface.Snapshot
}

// State は Controller のある時点の状態です。
type State struct {
	StationID      string
	View           ViewState
	SelectedForm   ViewState
	Session        Session
	KeypadEntry    string
	CanSubmitEntry bool
	Notice         string
	ResetPending   bool
	Inspection     *inspection.Record
}

// Controller は端末の画面遷移と社員セッションを管理します。
// 全ての操作とタイマー処理は mu で直列化されます。
type Controller struct {
	cfg    Config
	auth   employee.Authenticator
	sink   inspection.Sink
	photos inspection.PhotoCapturer
	shifts ShiftRecorder
	clock  clockface.Clock
	sched  Scheduler
	logger *log.Logger

	mu         sync.Mutex
	view       ViewState
	selected   ViewState
	session    Session
	keypad     Keypad
	notice     string
	form       *inspection.Form
	resetTimer Timer
	resetGen   uint64
}

// NewController は Login 画面から始まる Controller を生成します。
func NewController(cfg Config, deps Dependencies) (*Controller, error) {
	if deps.Authenticator == nil {
		return nil, fmt.Errorf("authenticator is required: %w", ErrInvalidConfig)
	}
	cfg.StationID = strings.TrimSpace(cfg.StationID)
	if cfg.StationID == "" {
		cfg.StationID = DefaultStationID
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = DefaultResetDelay
	}
	if cfg.ClockTick <= 0 {
		cfg.ClockTick = DefaultClockTick
	}
	if deps.Clock == nil {
		deps.Clock = clockface.SystemClock()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = realScheduler{}
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	return &Controller{
		cfg:      cfg,
		auth:     deps.Authenticator,
		sink:     deps.Sink,
		photos:   deps.Photos,
		shifts:   deps.Shifts,
		clock:    deps.Clock,
		sched:    deps.Scheduler,
		logger:   deps.Logger,
		view:     ViewLogin,
		selected: ViewInspection,
	}, nil
}

// State は現在の状態を返します。
func (c *Controller) State(_ context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// View は表示中の画面を返します。
func (c *Controller) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// CardLogin は ID カードで認証します。
func (c *Controller) CardLogin(ctx context.Context, cardNumber string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("card login", ViewLogin); err != nil {
		return c.snapshotLocked(), err
	}
	c.notice = ""
	c.authenticateLocked(ctx, employee.CardRead(cardNumber))
	return c.snapshotLocked(), nil
}

// StartManualEntry はテンキー入力画面に移ります。
func (c *Controller) StartManualEntry(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("manual entry", ViewLogin); err != nil {
		return c.snapshotLocked(), err
	}
	c.notice = ""
	c.keypad.Clear()
	c.transitionLocked(ctx, ViewIDEntry)
	return c.snapshotLocked(), nil
}

// PressDigit は 1 桁入力します。
func (c *Controller) PressDigit(_ context.Context, digit string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("keypad", ViewIDEntry); err != nil {
		return c.snapshotLocked(), err
	}
	if err := c.keypad.Press(digit); err != nil {
		return c.snapshotLocked(), err
	}
	c.notice = ""
	return c.snapshotLocked(), nil
}

// Backspace は末尾の 1 桁を削除します。
func (c *Controller) Backspace(_ context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("backspace", ViewIDEntry); err != nil {
		return c.snapshotLocked(), err
	}
	c.keypad.Backspace()
	return c.snapshotLocked(), nil
}

// ClearEntry は入力中の ID を消去します。
func (c *Controller) ClearEntry(_ context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("clear", ViewIDEntry); err != nil {
		return c.snapshotLocked(), err
	}
	c.keypad.Clear()
	return c.snapshotLocked(), nil
}

// CancelEntry は入力を破棄して Login 画面に戻ります。
func (c *Controller) CancelEntry(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("cancel", ViewIDEntry); err != nil {
		return c.snapshotLocked(), err
	}
	c.notice = ""
	c.keypad.Clear()
	c.transitionLocked(ctx, ViewLogin)
	return c.snapshotLocked(), nil
}

// SubmitEntry は入力された ID で認証します。入力が空なら何もしません。
func (c *Controller) SubmitEntry(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("submit", ViewIDEntry); err != nil {
		return c.snapshotLocked(), err
	}
	if c.keypad.Len() == 0 {
		return c.snapshotLocked(), nil
	}

	id := c.keypad.String()
	c.keypad.Clear()
	c.notice = ""
	c.authenticateLocked(ctx, employee.ManualID(id))
	return c.snapshotLocked(), nil
}

// SwitchForm は点検票とタイムシートを切り替えます。
func (c *Controller) SwitchForm(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("switch form", ViewInspection, ViewTimesheet); err != nil {
		return c.snapshotLocked(), err
	}
	c.notice = ""
	if c.view == ViewInspection {
		c.selected = ViewTimesheet
	} else {
		c.selected = ViewInspection
	}
	c.enterFormLocked(ctx)
	return c.snapshotLocked(), nil
}

// ToggleCheck は点検項目のチェックを反転します。
func (c *Controller) ToggleCheck(_ context.Context, group inspection.Group, item string, phase inspection.Phase) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("toggle check", ViewInspection); err != nil {
		return c.snapshotLocked(), err
	}
	if err := c.form.ToggleCheck(group, item, phase); err != nil {
		return c.snapshotLocked(), err
	}
	return c.snapshotLocked(), nil
}

// SetBrakeReading はブレーキ項目の空気圧を設定します。
func (c *Controller) SetBrakeReading(_ context.Context, item inspection.BrakeItem, reading *float64) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("brake reading", ViewInspection); err != nil {
		return c.snapshotLocked(), err
	}
	if err := c.form.SetBrakeReading(item, reading); err != nil {
		return c.snapshotLocked(), err
	}
	return c.snapshotLocked(), nil
}

// SetField は点検票の自由記述欄を設定します。
func (c *Controller) SetField(_ context.Context, field inspection.Field, value string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("set field", ViewInspection); err != nil {
		return c.snapshotLocked(), err
	}
	if err := c.form.SetField(field, value); err != nil {
		return c.snapshotLocked(), err
	}
	return c.snapshotLocked(), nil
}

// AddPhoto は写真を撮影して点検票に添付します。失敗してもセッションは継続します。
func (c *Controller) AddPhoto(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("add photo", ViewInspection); err != nil {
		return c.snapshotLocked(), err
	}
	c.notice = ""
	if _, err := c.form.AddPhoto(ctx); err != nil {
		if errors.Is(err, inspection.ErrCaptureCancelled) {
			c.notice = NoticePhotoCancelled
		} else {
			c.notice = NoticePhotoFailed
			c.logger.Printf("kiosk: photo capture for %s failed: %v", c.session.EmployeeID, err)
		}
	}
	return c.snapshotLocked(), nil
}

// SubmitInspection は点検票を提出します。保存に失敗した場合は画面に留まり再提出できます。
func (c *Controller) SubmitInspection(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("submit inspection", ViewInspection); err != nil {
		return c.snapshotLocked(), err
	}
	c.notice = ""
	if _, err := c.form.Submit(ctx); err != nil {
		c.notice = NoticeSubmitFailed
		c.logger.Printf("kiosk: inspection submit for %s failed: %v", c.session.EmployeeID, err)
	}
	return c.snapshotLocked(), nil
}

// ClockOut は退勤を記録して完了画面に移ります。
func (c *Controller) ClockOut(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("clock out", ViewClockOut); err != nil {
		return c.snapshotLocked(), err
	}
	c.notice = ""
	c.recordShiftLocked("clock-out", func() error {
		_, err := c.shifts.ClockOut(ctx, c.session.EmployeeID)
		return err
	})
	c.enterCompleteLocked(ctx)
	return c.snapshotLocked(), nil
}

// Timesheet はタイムシート画面の表示内容を返します。
func (c *Controller) Timesheet(_ context.Context) (*timesheet.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLocked("timesheet", ViewTimesheet); err != nil {
		return nil, err
	}
	return timesheet.NewView(c.cfg.StationID, c.session.DisplayName, c.session.EmployeeID, c.session.ClockInTimestamp)
}

// Reset はどの画面からでもセッションを破棄して Login 画面に戻ります。
func (c *Controller) Reset(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked(ctx)
	return c.snapshotLocked()
}

// WatchClock は Login 画面の表示中だけ時計の Snapshot を送出します。
// ctx がキャンセルされるとチャネルは閉じられます。
func (c *Controller) WatchClock(ctx context.Context) <-chan clockface.Snapshot {
	ticks := clockface.Ticks(ctx, c.clock, c.cfg.ClockTick)
	out := make(chan clockface.Snapshot)

	go func() {
		defer close(out)
		for snap := range ticks {
			if c.View() != ViewLogin {
				continue
			}
			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Close は予約済みの自動復帰を取り消します。
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelResetLocked()
}

func (c *Controller) authenticateLocked(ctx context.Context, src employee.Source) {
	rec, err := c.auth.Authenticate(ctx, src)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) || errors.Is(err, employee.ErrInvalidIdentifier) {
			c.notice = NoticeEmployeeNotFound
		} else {
			c.notice = NoticeAuthUnavailable
			c.logger.Printf("kiosk: authenticate %s failed: %v", src, err)
		}
		return
	}

	c.cancelResetLocked()
	c.form = nil
	c.session = Session{
		DisplayName:         rec.DisplayName,
		EmployeeID:          rec.EmployeeID,
		ClockedIn:           rec.ClockedIn,
		InspectionCompleted: rec.ClockedIn && rec.InspectionCompleted,
		ClockInTimestamp:    rec.ClockInTime,
	}

	switch {
	case !c.session.ClockedIn:
		now := c.clock.Now()
		c.session.ClockInTimestamp = clockface.FormatTime(now)
		c.session.ClockedIn = true
		c.recordShiftLocked("clock-in", func() error {
			_, err := c.shifts.ClockIn(ctx, shift.ClockInInput{
				EmployeeID: c.session.EmployeeID,
				StationID:  c.cfg.StationID,
				ClockInAt:  now,
				Label:      c.session.ClockInTimestamp,
			})
			return err
		})
		c.enterFormLocked(ctx)
	case !c.session.InspectionCompleted:
		c.enterFormLocked(ctx)
	default:
		c.transitionLocked(ctx, ViewClockOut)
	}
}

// onInspectionSubmitted は Form.Submit から mu を保持したまま呼ばれます。
func (c *Controller) onInspectionSubmitted(ctx context.Context, rec inspection.Record) {
	c.session.ClockedIn = true
	c.session.InspectionCompleted = true
	c.recordShiftLocked("inspection", func() error {
		return c.shifts.MarkInspected(ctx, c.session.EmployeeID)
	})
	trace.SpanFromContext(ctx).AddEvent("kiosk.inspection_submitted", trace.WithAttributes(
		attribute.String("kiosk.inspection_id", rec.ID),
		attribute.Int("kiosk.checked_items", rec.CheckedCount()),
	))
	c.enterCompleteLocked(ctx)
}

func (c *Controller) enterFormLocked(ctx context.Context) {
	if c.form == nil {
		rec := inspection.NewRecord(c.session.EmployeeID, c.cfg.StationID, c.clock.Now())
		c.form = inspection.NewForm(rec, c.sink, c.photos, c.clock, c.onInspectionSubmitted)
	}
	c.transitionLocked(ctx, c.selected)
}

func (c *Controller) enterCompleteLocked(ctx context.Context) {
	c.transitionLocked(ctx, ViewComplete)
	c.armResetLocked()
}

// armResetLocked は自動復帰を 1 つだけ予約します。古い予約は世代番号で無効化されます。
func (c *Controller) armResetLocked() {
	c.cancelResetLocked()
	gen := c.resetGen
	c.resetTimer = c.sched.AfterFunc(c.cfg.ResetDelay, func() {
		c.fireReset(gen)
	})
}

func (c *Controller) cancelResetLocked() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
	c.resetGen++
}

func (c *Controller) fireReset(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.resetGen || c.view != ViewComplete {
		return
	}
	c.resetLocked(context.Background())
}

func (c *Controller) resetLocked(ctx context.Context) {
	c.cancelResetLocked()
	c.session = Session{}
	c.keypad.Clear()
	c.form = nil
	c.notice = ""
	c.transitionLocked(ctx, ViewLogin)
}

func (c *Controller) recordShiftLocked(action string, fn func() error) {
	if c.shifts == nil {
		return
	}
	if err := fn(); err != nil {
		c.notice = NoticeShiftNotRecorded
		c.logger.Printf("kiosk: record %s for %s failed: %v", action, c.session.EmployeeID, err)
	}
}

func (c *Controller) requireLocked(action string, allowed ...ViewState) error {
	for _, v := range allowed {
		if c.view == v {
			return nil
		}
	}
	return fmt.Errorf("%s in %s: %w", action, c.view, ErrInvalidTransition)
}

func (c *Controller) transitionLocked(ctx context.Context, to ViewState) {
	from := c.view
	c.view = to
	trace.SpanFromContext(ctx).AddEvent("kiosk.transition", trace.WithAttributes(
		attribute.String("kiosk.from", string(from)),
		attribute.String("kiosk.to", string(to)),
		attribute.String("kiosk.station_id", c.cfg.StationID),
	))
}

func (c *Controller) snapshotLocked() State {
	st := State{
		StationID:      c.cfg.StationID,
		View:           c.view,
		SelectedForm:   c.selected,
		Session:        c.session,
		KeypadEntry:    c.keypad.String(),
		CanSubmitEntry: c.view == ViewIDEntry && c.keypad.Len() > 0,
		Notice:         c.notice,
		ResetPending:   c.resetTimer != nil,
	}
	if c.form != nil {
		rec := c.form.Record()
		st.Inspection = &rec
	}
	return st
}
