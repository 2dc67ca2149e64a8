package report

import "time"

// SetClock replaces the clock of p.
func SetClock(p *Plain, now func() time.Time) {
	p.now = now
}
