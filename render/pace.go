package render

import "time"

// pacer decides when the next generation is due, accumulating elapsed
// time so a slow frame does not drift the schedule.
type pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func newPacer(step time.Duration) *pacer {
	if step <= 0 {
		step = time.Second / 60
	}
	// a full step must pass before the first generation, so frame 0 is drawn
	return &pacer{step: step}
}

// due reports whether a generation should be computed at now
func (p *pacer) due(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		// never bank more than one pending step
		p.accumulator = min(p.accumulator, p.step)
		return true
	}
	return false
}

// restart drops accumulated time, e.g. after a pause
func (p *pacer) restart(now time.Time) {
	p.last = now
	p.accumulator = 0
}
