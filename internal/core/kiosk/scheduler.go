package kiosk

import "time"

// Timer は予約済みの処理です。
type Timer interface {
	Stop() bool
}

// Scheduler は一定時間後に処理を実行します。
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
