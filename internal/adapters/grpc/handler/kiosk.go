package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/ogurasousui/timeclock-kiosk/internal/adapters/grpc/kioskv1"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/clockface"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/inspection"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/kiosk"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/timesheet"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// KioskGrpcHandler は KioskService の gRPC 実装です。
type KioskGrpcHandler struct {
	svc kiosk.UseCase
	kioskv1.UnimplementedKioskServiceServer
}

// NewKioskGrpcHandler は KioskGrpcHandler を生成します。
func NewKioskGrpcHandler(svc kiosk.UseCase) *KioskGrpcHandler {
	return &KioskGrpcHandler{svc: svc}
}

// GetState は現在の端末状態を返します。
func (h *KioskGrpcHandler) GetState(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.State(ctx), nil)
}

// CardLogin は ID カードの読み取りで認証します。
func (h *KioskGrpcHandler) CardLogin(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	return toProtoState(h.svc.CardLogin(ctx, req.GetValue()))
}

// StartManualEntry はテンキー入力を開始します。
func (h *KioskGrpcHandler) StartManualEntry(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.StartManualEntry(ctx))
}

// PressDigit は 1 桁入力します。
func (h *KioskGrpcHandler) PressDigit(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	return toProtoState(h.svc.PressDigit(ctx, req.GetValue()))
}

func (h *KioskGrpcHandler) Backspace(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.Backspace(ctx))
}

func (h *KioskGrpcHandler) ClearEntry(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.ClearEntry(ctx))
}

func (h *KioskGrpcHandler) CancelEntry(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.CancelEntry(ctx))
}

func (h *KioskGrpcHandler) SubmitEntry(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.SubmitEntry(ctx))
}

func (h *KioskGrpcHandler) SwitchForm(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.SwitchForm(ctx))
}

// ToggleCheck は {group, item, phase} で指定された項目を反転します。
func (h *KioskGrpcHandler) ToggleCheck(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	group, err := requiredString(req, "group")
	if err != nil {
		return nil, err
	}
	item, err := requiredString(req, "item")
	if err != nil {
		return nil, err
	}
	phase, err := requiredString(req, "phase")
	if err != nil {
		return nil, err
	}
	return toProtoState(h.svc.ToggleCheck(ctx, inspection.Group(group), item, inspection.Phase(phase)))
}

// SetBrakeReading は {item, reading} を設定します。reading が null なら値を消去します。
func (h *KioskGrpcHandler) SetBrakeReading(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	item, err := requiredString(req, "item")
	if err != nil {
		return nil, err
	}

	var reading *float64
	if v, ok := req.GetFields()["reading"]; ok {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_NullValue:
		case *structpb.Value_NumberValue:
			value := kind.NumberValue
			reading = &value
		default:
			return nil, status.Error(codes.InvalidArgument, "reading must be a number or null")
		}
	}

	return toProtoState(h.svc.SetBrakeReading(ctx, inspection.BrakeItem(item), reading))
}

// SetField は {field, value} を設定します。
func (h *KioskGrpcHandler) SetField(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	field, err := requiredString(req, "field")
	if err != nil {
		return nil, err
	}
	value, ok := req.GetFields()["value"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "value is required")
	}
	if _, isString := value.GetKind().(*structpb.Value_StringValue); !isString {
		return nil, status.Error(codes.InvalidArgument, "value must be a string")
	}
	return toProtoState(h.svc.SetField(ctx, inspection.Field(field), value.GetStringValue()))
}

func (h *KioskGrpcHandler) AddPhoto(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.AddPhoto(ctx))
}

func (h *KioskGrpcHandler) SubmitInspection(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.SubmitInspection(ctx))
}

func (h *KioskGrpcHandler) ClockOut(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.ClockOut(ctx))
}

// GetTimesheet はタイムシート画面の内容を返します。
func (h *KioskGrpcHandler) GetTimesheet(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	view, err := h.svc.Timesheet(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoTimesheet(view)
}

// Reset はセッションを破棄して Login 画面に戻します。
func (h *KioskGrpcHandler) Reset(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toProtoState(h.svc.Reset(ctx), nil)
}

// WatchClock は Login 画面の時計表示をストリーミングします。
func (h *KioskGrpcHandler) WatchClock(_ *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	ctx := stream.Context()
	for snap := range h.svc.WatchClock(ctx) {
		msg, err := toProtoSnapshot(snap)
		if err != nil {
			return toStatusError(err)
		}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return toStatusError(err)
	}
	return nil
}

func requiredString(req *structpb.Struct, key string) (string, error) {
	if req == nil {
		return "", status.Error(codes.InvalidArgument, "request is required")
	}
	v, ok := req.GetFields()[key]
	if !ok {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("%s is required", key))
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString || strings.TrimSpace(s.StringValue) == "" {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a non-empty string", key))
	}
	return strings.TrimSpace(s.StringValue), nil
}

func toProtoState(st kiosk.State, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, toStatusError(err)
	}

	m := map[string]any{
		"station_id":       st.StationID,
		"view":             string(st.View),
		"selected_form":    string(st.SelectedForm),
		"keypad_entry":     st.KeypadEntry,
		"can_submit_entry": st.CanSubmitEntry,
		"notice":           st.Notice,
		"reset_pending":    st.ResetPending,
		"session": map[string]any{
			"display_name":         st.Session.DisplayName,
			"employee_id":          st.Session.EmployeeID,
			"clocked_in":           st.Session.ClockedIn,
			"inspection_completed": st.Session.InspectionCompleted,
			"clock_in_timestamp":   st.Session.ClockInTimestamp,
			"banner":               st.Session.Banner(),
		},
		"inspection": nil,
	}
	if st.Inspection != nil {
		m["inspection"] = inspectionMap(*st.Inspection)
	}

	out, convErr := structpb.NewStruct(m)
	if convErr != nil {
		return nil, status.Error(codes.Internal, convErr.Error())
	}
	return out, nil
}

func inspectionMap(rec inspection.Record) map[string]any {
	fields := make(map[string]any, len(rec.Fields))
	for k, v := range rec.Fields {
		fields[string(k)] = v
	}

	exterior := make(map[string]any, len(rec.Exterior))
	for item, c := range rec.Exterior {
		exterior[string(item)] = checkMap(c)
	}
	interior := make(map[string]any, len(rec.Interior))
	for item, c := range rec.Interior {
		interior[string(item)] = checkMap(c)
	}
	brakes := make(map[string]any, len(rec.Brakes))
	for item, c := range rec.Brakes {
		entry := checkMap(c.Check)
		entry["reading"] = nil
		if c.Reading != nil {
			entry["reading"] = *c.Reading
		}
		brakes[string(item)] = entry
	}

	photos := make([]any, 0, len(rec.Photos))
	for _, p := range rec.Photos {
		photos = append(photos, string(p))
	}

	return map[string]any{
		"id":            rec.ID,
		"employee_id":   rec.EmployeeID,
		"station_id":    rec.StationID,
		"fields":        fields,
		"exterior":      exterior,
		"interior":      interior,
		"brakes":        brakes,
		"photos":        photos,
		"checked_count": rec.CheckedCount(),
	}
}

func checkMap(c inspection.Check) map[string]any {
	return map[string]any{
		string(inspection.PhasePreTrip):  c.PreTrip,
		string(inspection.PhasePostTrip): c.PostTrip,
	}
}

func toProtoTimesheet(v *timesheet.View) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(map[string]any{
		"station_id":    v.StationID,
		"employee_name": v.EmployeeName,
		"employee_id":   v.EmployeeID,
		"clock_in_time": v.ClockInTime,
		"title":         v.Title(),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func toProtoSnapshot(snap clockface.Snapshot) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"time": snap.Time,
		"date": snap.Date,
	})
}
