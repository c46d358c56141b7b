// Package kioskv1 は KioskService の gRPC 契約です。
// メッセージには well-known types を使い、画面状態は structpb.Struct で表現します。
package kioskv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "timeclock.kiosk.v1.KioskService"

const (
	KioskService_GetState_FullMethodName         = "/" + ServiceName + "/GetState"
	KioskService_CardLogin_FullMethodName        = "/" + ServiceName + "/CardLogin"
	KioskService_StartManualEntry_FullMethodName = "/" + ServiceName + "/StartManualEntry"
	KioskService_PressDigit_FullMethodName       = "/" + ServiceName + "/PressDigit"
	KioskService_Backspace_FullMethodName        = "/" + ServiceName + "/Backspace"
	KioskService_ClearEntry_FullMethodName       = "/" + ServiceName + "/ClearEntry"
	KioskService_CancelEntry_FullMethodName      = "/" + ServiceName + "/CancelEntry"
	KioskService_SubmitEntry_FullMethodName      = "/" + ServiceName + "/SubmitEntry"
	KioskService_SwitchForm_FullMethodName       = "/" + ServiceName + "/SwitchForm"
	KioskService_ToggleCheck_FullMethodName      = "/" + ServiceName + "/ToggleCheck"
	KioskService_SetBrakeReading_FullMethodName  = "/" + ServiceName + "/SetBrakeReading"
	KioskService_SetField_FullMethodName         = "/" + ServiceName + "/SetField"
	KioskService_AddPhoto_FullMethodName         = "/" + ServiceName + "/AddPhoto"
	KioskService_SubmitInspection_FullMethodName = "/" + ServiceName + "/SubmitInspection"
	KioskService_ClockOut_FullMethodName         = "/" + ServiceName + "/ClockOut"
	KioskService_GetTimesheet_FullMethodName     = "/" + ServiceName + "/GetTimesheet"
	KioskService_Reset_FullMethodName            = "/" + ServiceName + "/Reset"
	KioskService_WatchClock_FullMethodName       = "/" + ServiceName + "/WatchClock"
)

// KioskServiceClient は KioskService のクライアント API です。
type KioskServiceClient interface {
	GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	CardLogin(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	StartManualEntry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	PressDigit(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Backspace(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClearEntry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	CancelEntry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	SubmitEntry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	SwitchForm(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	ToggleCheck(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetBrakeReading(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetField(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddPhoto(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	SubmitInspection(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClockOut(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetTimesheet(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	WatchClock(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error)
}

type kioskServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewKioskServiceClient は KioskServiceClient を生成します。
func NewKioskServiceClient(cc grpc.ClientConnInterface) KioskServiceClient {
	return &kioskServiceClient{cc: cc}
}

func (c *kioskServiceClient) invoke(ctx context.Context, method string, in proto.Message, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kioskServiceClient) GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_GetState_FullMethodName, in, opts)
}

func (c *kioskServiceClient) CardLogin(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_CardLogin_FullMethodName, in, opts)
}

func (c *kioskServiceClient) StartManualEntry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_StartManualEntry_FullMethodName, in, opts)
}

func (c *kioskServiceClient) PressDigit(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_PressDigit_FullMethodName, in, opts)
}

func (c *kioskServiceClient) Backspace(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_Backspace_FullMethodName, in, opts)
}

func (c *kioskServiceClient) ClearEntry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_ClearEntry_FullMethodName, in, opts)
}

func (c *kioskServiceClient) CancelEntry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_CancelEntry_FullMethodName, in, opts)
}

func (c *kioskServiceClient) SubmitEntry(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_SubmitEntry_FullMethodName, in, opts)
}

func (c *kioskServiceClient) SwitchForm(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_SwitchForm_FullMethodName, in, opts)
}

func (c *kioskServiceClient) ToggleCheck(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_ToggleCheck_FullMethodName, in, opts)
}

func (c *kioskServiceClient) SetBrakeReading(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_SetBrakeReading_FullMethodName, in, opts)
}

func (c *kioskServiceClient) SetField(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_SetField_FullMethodName, in, opts)
}

func (c *kioskServiceClient) AddPhoto(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_AddPhoto_FullMethodName, in, opts)
}

func (c *kioskServiceClient) SubmitInspection(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_SubmitInspection_FullMethodName, in, opts)
}

func (c *kioskServiceClient) ClockOut(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_ClockOut_FullMethodName, in, opts)
}

func (c *kioskServiceClient) GetTimesheet(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_GetTimesheet_FullMethodName, in, opts)
}

func (c *kioskServiceClient) Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, KioskService_Reset_FullMethodName, in, opts)
}

func (c *kioskServiceClient) WatchClock(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &KioskService_ServiceDesc.Streams[0], KioskService_WatchClock_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// KioskServiceServer は KioskService のサーバー実装が満たすインターフェースです。
type KioskServiceServer interface {
	GetState(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	CardLogin(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	StartManualEntry(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	PressDigit(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Backspace(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ClearEntry(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	CancelEntry(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SubmitEntry(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SwitchForm(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ToggleCheck(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetBrakeReading(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetField(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddPhoto(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SubmitInspection(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ClockOut(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetTimesheet(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Reset(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	WatchClock(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error
	mustEmbedUnimplementedKioskServiceServer()
}

// UnimplementedKioskServiceServer は前方互換のために埋め込む既定実装です。
type UnimplementedKioskServiceServer struct{}

func (UnimplementedKioskServiceServer) GetState(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetState not implemented")
}

func (UnimplementedKioskServiceServer) CardLogin(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CardLogin not implemented")
}

func (UnimplementedKioskServiceServer) StartManualEntry(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method StartManualEntry not implemented")
}

func (UnimplementedKioskServiceServer) PressDigit(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method PressDigit not implemented")
}

func (UnimplementedKioskServiceServer) Backspace(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Backspace not implemented")
}

func (UnimplementedKioskServiceServer) ClearEntry(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearEntry not implemented")
}

func (UnimplementedKioskServiceServer) CancelEntry(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelEntry not implemented")
}

func (UnimplementedKioskServiceServer) SubmitEntry(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitEntry not implemented")
}

func (UnimplementedKioskServiceServer) SwitchForm(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SwitchForm not implemented")
}

func (UnimplementedKioskServiceServer) ToggleCheck(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleCheck not implemented")
}

func (UnimplementedKioskServiceServer) SetBrakeReading(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SetBrakeReading not implemented")
}

func (UnimplementedKioskServiceServer) SetField(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SetField not implemented")
}

func (UnimplementedKioskServiceServer) AddPhoto(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddPhoto not implemented")
}

func (UnimplementedKioskServiceServer) SubmitInspection(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitInspection not implemented")
}

func (UnimplementedKioskServiceServer) ClockOut(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ClockOut not implemented")
}

func (UnimplementedKioskServiceServer) GetTimesheet(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTimesheet not implemented")
}

func (UnimplementedKioskServiceServer) Reset(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Reset not implemented")
}

func (UnimplementedKioskServiceServer) WatchClock(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error {
	return status.Error(codes.Unimplemented, "method WatchClock not implemented")
}

func (UnimplementedKioskServiceServer) mustEmbedUnimplementedKioskServiceServer() {}

// RegisterKioskServiceServer は KioskService をサーバーに登録します。
func RegisterKioskServiceServer(s grpc.ServiceRegistrar, srv KioskServiceServer) {
	s.RegisterService(&KioskService_ServiceDesc, srv)
}

func unaryHandler[Req any, PReq interface {
	*Req
	proto.Message
}](fullMethod string, call func(KioskServiceServer, context.Context, PReq) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(KioskServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(KioskServiceServer), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchClockHandler(srv any, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(KioskServiceServer).WatchClock(m, &grpc.GenericServerStream[emptypb.Empty, structpb.Struct]{ServerStream: stream})
}

// KioskService_ServiceDesc は KioskService の grpc.ServiceDesc です。
var KioskService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*KioskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetState", Handler: unaryHandler(KioskService_GetState_FullMethodName, KioskServiceServer.GetState)},
		{MethodName: "CardLogin", Handler: unaryHandler(KioskService_CardLogin_FullMethodName, KioskServiceServer.CardLogin)},
		{MethodName: "StartManualEntry", Handler: unaryHandler(KioskService_StartManualEntry_FullMethodName, KioskServiceServer.StartManualEntry)},
		{MethodName: "PressDigit", Handler: unaryHandler(KioskService_PressDigit_FullMethodName, KioskServiceServer.PressDigit)},
		{MethodName: "Backspace", Handler: unaryHandler(KioskService_Backspace_FullMethodName, KioskServiceServer.Backspace)},
		{MethodName: "ClearEntry", Handler: unaryHandler(KioskService_ClearEntry_FullMethodName, KioskServiceServer.ClearEntry)},
		{MethodName: "CancelEntry", Handler: unaryHandler(KioskService_CancelEntry_FullMethodName, KioskServiceServer.CancelEntry)},
		{MethodName: "SubmitEntry", Handler: unaryHandler(KioskService_SubmitEntry_FullMethodName, KioskServiceServer.SubmitEntry)},
		{MethodName: "SwitchForm", Handler: unaryHandler(KioskService_SwitchForm_FullMethodName, KioskServiceServer.SwitchForm)},
		{MethodName: "ToggleCheck", Handler: unaryHandler(KioskService_ToggleCheck_FullMethodName, KioskServiceServer.ToggleCheck)},
		{MethodName: "SetBrakeReading", Handler: unaryHandler(KioskService_SetBrakeReading_FullMethodName, KioskServiceServer.SetBrakeReading)},
		{MethodName: "SetField", Handler: unaryHandler(KioskService_SetField_FullMethodName, KioskServiceServer.SetField)},
		{MethodName: "AddPhoto", Handler: unaryHandler(KioskService_AddPhoto_FullMethodName, KioskServiceServer.AddPhoto)},
		{MethodName: "SubmitInspection", Handler: unaryHandler(KioskService_SubmitInspection_FullMethodName, KioskServiceServer.SubmitInspection)},
		{MethodName: "ClockOut", Handler: unaryHandler(KioskService_ClockOut_FullMethodName, KioskServiceServer.ClockOut)},
		{MethodName: "GetTimesheet", Handler: unaryHandler(KioskService_GetTimesheet_FullMethodName, KioskServiceServer.GetTimesheet)},
		{MethodName: "Reset", Handler: unaryHandler(KioskService_Reset_FullMethodName, KioskServiceServer.Reset)},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "WatchClock", Handler: watchClockHandler, ServerStreams: true},
	},
}
