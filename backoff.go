// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb

import "time"

// Linear is a linear-backoff delay schedule for retry loops:
// Delay(n) = Initial + n*Step, clamped to Max when Max is positive.
// The zero value delays nothing.
type Linear struct {
	Initial time.Duration
	Step    time.Duration
	Max     time.Duration
}

// Delay returns the pause before retrying after the given zero-based
// attempt. Negative attempts are treated as attempt zero.
func (l Linear) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := l.Initial + time.Duration(attempt)*l.Step
	if l.Max > 0 && d > l.Max {
		d = l.Max
	}
	return d
}

// Retry runs op up to attempts times, pausing between attempts per the
// policy. The pause is performed by sleep (time.Sleep in production, a
// recorder in tests); a nil sleep retries immediately. Returns the first
// success, or the failure of the final attempt.
func Retry[T any](policy Linear, attempts int, sleep func(time.Duration), op func(attempt int) Result[T]) Result[T] {
	if attempts < 1 {
		return Errf[T]("retry: need at least one attempt, got %d", attempts)
	}
	var r Result[T]
	for attempt := range attempts {
		if attempt > 0 && sleep != nil {
			sleep(policy.Delay(attempt - 1))
		}
		r = op(attempt)
		if r.IsOk() {
			return r
		}
	}
	return r
}
