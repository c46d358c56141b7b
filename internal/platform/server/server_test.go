package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/ogurasousui/timeclock-kiosk/internal/adapters/grpc/kioskv1"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/employee"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/kiosk"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestServer_ServesKioskAndHealth(t *testing.T) {
	t.Parallel()

	ctrl, err := kiosk.NewController(kiosk.Config{ClockTick: time.Hour}, kiosk.Dependencies{
		Authenticator: employee.NewStubAuthenticator(nil),
	})
	if err != nil {
		t.Fatalf("NewController returned error: %v", err)
	}
	t.Cleanup(ctrl.Close)

	srv := New("bufnet", ctrl)
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()

	resp, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{Service: kioskv1.ServiceName})
	if err != nil {
		t.Fatalf("health check returned error: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("unexpected health status: %s", resp.GetStatus())
	}

	st, err := kioskv1.NewKioskServiceClient(conn).GetState(callCtx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetState returned error: %v", err)
	}
	if got := st.AsMap()["station_id"]; got != kiosk.DefaultStationID {
		t.Fatalf("unexpected station id: %v", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
