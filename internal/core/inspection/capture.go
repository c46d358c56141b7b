package inspection

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// StubCapturer はカメラを持たない端末向けの PhotoCapturer です。
// 撮影は行わず、一意な参照だけを払い出します。
type StubCapturer struct{}

// NewStubCapturer は StubCapturer を生成します。
func NewStubCapturer() *StubCapturer {
	return &StubCapturer{}
}

func (StubCapturer) CapturePhoto(ctx context.Context) (ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrCaptureCancelled
	}
	return ImageRef("photo://" + uuid.NewString()), nil
}

// LogSink は提出内容をログに書き出すだけの Sink です。
type LogSink struct {
	logger *log.Logger
}

// NewLogSink は LogSink を生成します。logger が nil の場合は標準ロガーを使います。
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) SubmitInspection(_ context.Context, rec Record) error {
	s.logger.Printf("inspection %s submitted: employee=%s station=%s bus=%q checked=%d photos=%d captured_at=%s",
		rec.ID, rec.EmployeeID, rec.StationID, rec.Fields[FieldBusNumber], rec.CheckedCount(), len(rec.Photos),
		rec.CapturedAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}
