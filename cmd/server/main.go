package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/timeclock-kiosk/internal/adapters/repository/postgres"
	"github.com/ogurasousui/timeclock-kiosk/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/clockface"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/employee"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/inspection"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/kiosk"
	"github.com/ogurasousui/timeclock-kiosk/internal/core/shift"
	"github.com/ogurasousui/timeclock-kiosk/internal/platform/config"
	pg "github.com/ogurasousui/timeclock-kiosk/internal/platform/db/postgres"
	"github.com/ogurasousui/timeclock-kiosk/internal/platform/otel"
	"github.com/ogurasousui/timeclock-kiosk/internal/platform/server"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// backend はストレージ設定に応じて組み立てた依存関係です。
type backend struct {
	directory employee.Repository
	writer    employee.Writer
	shifts    *shift.Service
	sink      inspection.Sink
	tx        employee.TransactionManager
	close     func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdownTracing, err := otel.Setup(ctx, cfg.Telemetry, cfg.Kiosk.StationID)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	clock := clockface.SystemClock()
	be, err := openBackend(ctx, cfg, clock)
	if err != nil {
		log.Fatalf("failed to initialize %s storage: %v", cfg.Kiosk.Storage, err)
	}
	defer be.close()

	if err := seedEmployees(ctx, be.writer, cfg.Kiosk.Employees); err != nil {
		log.Fatalf("failed to seed employees: %v", err)
	}

	var auth employee.Authenticator
	switch cfg.Kiosk.Authenticator {
	case config.AuthenticatorDirectory:
		auth = employee.NewService(be.directory, be.shifts, be.tx)
	default:
		auth = employee.NewStubAuthenticator(be.shifts)
	}

	logger := log.Default()
	ctrl, err := kiosk.NewController(kiosk.Config{
		StationID:  cfg.Kiosk.StationID,
		ResetDelay: cfg.Kiosk.ResetDelay,
		ClockTick:  cfg.Kiosk.ClockTick,
	}, kiosk.Dependencies{
		Authenticator: auth,
		Sink:          be.sink,
		Photos:        inspection.NewStubCapturer(),
		Shifts:        be.shifts,
		Clock:         clock,
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("failed to create kiosk controller: %v", err)
	}
	defer ctrl.Close()

	grpcServer := server.New(cfg.Server.ListenAddr, ctrl, grpc.StatsHandler(otelgrpc.NewServerHandler()))

	log.Printf("kiosk %s (storage=%s, authenticator=%s) listening on %s",
		cfg.Kiosk.StationID, cfg.Kiosk.Storage, cfg.Kiosk.Authenticator, cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}

func openBackend(ctx context.Context, cfg *config.Config, clock clockface.Clock) (*backend, error) {
	switch cfg.Kiosk.Storage {
	case config.StoragePostgres:
		dbPool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		tx := pg.NewTransactionManager(dbPool)
		employees := postgres.NewEmployeeRepository(dbPool)
		return &backend{
			directory: employees,
			writer:    employees,
			shifts:    shift.NewService(postgres.NewShiftRepository(dbPool), clock, tx),
			sink:      postgres.NewInspectionRepository(dbPool),
			tx:        tx,
			close:     dbPool.Close,
		}, nil

	case config.StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &backend{
			directory: store,
			writer:    store,
			shifts:    shift.NewService(store, clock, nil),
			sink:      store,
			close: func() {
				if err := store.Close(); err != nil {
					log.Printf("close sqlite store: %v", err)
				}
			},
		}, nil

	case config.StorageMemory:
		return &backend{
			shifts: shift.NewService(shift.NewMemoryRepository(), clock, nil),
			sink:   inspection.NewLogSink(log.Default()),
			close:  func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage %q", cfg.Kiosk.Storage)
	}
}

func seedEmployees(ctx context.Context, w employee.Writer, seeds []config.EmployeeSeed) error {
	if len(seeds) == 0 {
		return nil
	}
	if w == nil {
		log.Printf("kiosk.employees ignored: storage has no employee directory")
		return nil
	}

	employees := make([]employee.Employee, 0, len(seeds))
	for _, s := range seeds {
		employees = append(employees, employee.Employee{
			EmployeeCode: s.Code,
			CardNumber:   s.CardNumber,
			DisplayName:  s.DisplayName,
			Status:       employee.Status(s.Status),
		})
	}

	n, err := employee.Seed(ctx, w, employees)
	if err != nil {
		return err
	}
	log.Printf("seeded %d employees", n)
	return nil
}
