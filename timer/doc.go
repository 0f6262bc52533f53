// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package timer tracks elapsed inspection time.

# State Machine

	idle ──Start──▶ running ──Pause──▶ paused ──Start──▶ running
	  ▲                                                     │
	  └───────────────────── Reset ─────────────────────────┘

Elapsed time uses an accumulated-offset design: the running reference
instant is (now - already-elapsed), so pause/resume cycles keep elapsed
monotonically non-decreasing and pausing adds nothing. Reset clears both
the elapsed value and the first-interaction flag.

The clock is injectable (WithClock) so tests can simulate the passage of
time. WithTick registers a once-per-second display callback whose goroutine
is torn down by Pause, Reset, and Stop.
*/
package timer
