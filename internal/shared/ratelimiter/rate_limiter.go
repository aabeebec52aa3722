package ratelimiter

import (
	"log"
	"sync"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiterは、外部ビジョンAPI呼び出しの頻度を制限します。
// HTTPハンドラーから並行に呼ばれるため、カウンタはミューテックスで保護します。
type RateLimiter struct {
	limit    int           // intervalあたりの上限
	interval time.Duration // どの単位でリセットするか

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeededはレートリミットの上限に達しているかを確認し、必要であれば待機します。
// スリープ中はロックを持ちません。持ったまま眠ると枠内に収まっている他の呼び出し
// まで巻き添えで待たされるためです。起床後は枠が空いたか再確認します。
func (rl *RateLimiter) WaitIfNeeded() {
	for {
		rl.mu.Lock()

		now := time.Now()
		// interval を過ぎたらカウントリセット
		if now.Sub(rl.lastReset) >= rl.interval {
			rl.count = 0
			rl.lastReset = now
		}

		if rl.count < rl.limit {
			rl.count++
			rl.mu.Unlock()
			return
		}

		sleep := rl.interval - now.Sub(rl.lastReset)
		rl.mu.Unlock()

		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
	}
}
