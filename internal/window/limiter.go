package window

import (
	"time"

	"learngl/internal/config"
)

// spinWindow is how long before the deadline the limiter stops sleeping
// and busy-waits instead.
const spinWindow = 200 * time.Microsecond

// FrameLimiter caps the frame rate at config.GetFPSLimit(). The limit is
// read every frame so it can change while running.
type FrameLimiter struct {
	next time.Time
}

// Wait blocks until the next frame is due. With no limit it returns at
// once and forgets the schedule.
func (l *FrameLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		l.next = time.Time{}
		return
	}
	period := time.Second / time.Duration(limit)

	if l.next.IsZero() {
		l.next = time.Now()
	}
	l.next = l.next.Add(period)

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// after a hitch start a fresh schedule instead of rushing to catch up
	if late := -time.Until(l.next); late > period {
		l.next = time.Now()
	}
}
