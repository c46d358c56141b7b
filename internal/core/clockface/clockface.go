package clockface

import (
	"context"
	"time"
)

const (
	// TimeLayout は 24 時間表記・秒付きの時刻フォーマットです。
	TimeLayout = "15:04:05"
	// DateLayout は曜日・月名・日・年を含む日付フォーマットです。
	DateLayout = "Monday, January 2, 2006"

	defaultTickInterval = time.Second
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type localClock struct{}

// Now は端末のローカル時刻を返します。タイムゾーン変換は行いません。
func (localClock) Now() time.Time {
	return time.Now()
}

// SystemClock は端末のローカル時刻を返す Clock です。
func SystemClock() Clock {
	return localClock{}
}

// Snapshot はある時点の表示用時刻です。
type Snapshot struct {
	At   time.Time
	Time string
	Date string
}

// Format は時刻を表示用の Snapshot に変換します。
func Format(t time.Time) Snapshot {
	return Snapshot{
		At:   t,
		Time: FormatTime(t),
		Date: t.Format(DateLayout),
	}
}

// FormatTime は時刻を HH:MM:SS 形式で返します。
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// Ticks は interval ごとに現在時刻の Snapshot を送出するストリームを返します。
// 最初の Snapshot は即座に送出され、ctx がキャンセルされるとチャネルは閉じられます。
// 呼び出すたびに独立したストリームが生成されます。
func Ticks(ctx context.Context, clock Clock, interval time.Duration) <-chan Snapshot {
	if clock == nil {
		clock = SystemClock()
	}
	if interval <= 0 {
		interval = defaultTickInterval
	}

	out := make(chan Snapshot)
	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if !emit(ctx, out, Format(clock.Now())) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !emit(ctx, out, Format(clock.Now())) {
					return
				}
			}
		}
	}()

	return out
}

func emit(ctx context.Context, out chan<- Snapshot, snap Snapshot) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- snap:
		return true
	}
}
