package usecase

import "time"

// 現在時刻の注入用。テストでは固定時刻を渡す。
type Clock interface {
	Now() time.Time
}
