// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/timer.go
// Summary: Redraw-driven deadline timer for press-and-hold repeats.

package core

import "time"

// Timer is a deadline checked on redraw. It never fires on its own; the
// owner tests it whenever the shell delivers a frame and asks the shell
// to redraw again at Target.
type Timer struct {
	target   time.Time
	interval time.Duration
}

// NewTimer arms a timer that elapses interval after now.
func NewTimer(now time.Time, interval time.Duration) Timer {
	return Timer{target: now.Add(interval), interval: interval}
}

// Test reports whether the deadline has passed and, if so, re-arms the
// timer one interval past now.
func (t *Timer) Test(now time.Time) bool {
	if t.target.IsZero() || now.Before(t.target) {
		return false
	}
	t.target = now.Add(t.interval)
	return true
}

// Target returns the pending deadline, or the zero time when disarmed.
func (t *Timer) Target() time.Time {
	return t.target
}

// Stop disarms the timer.
func (t *Timer) Stop() {
	t.target = time.Time{}
}
