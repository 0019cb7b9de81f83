package core

import "time"

// Pacer spaces out generations at a steady generations-per-second rate.
// A zero rate disables pacing.
type Pacer struct {
	step time.Duration
	last time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer constructs a Pacer targeting the given rate.
func NewPacer(gps int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}
	p.SetRate(gps)
	return p
}

// SetRate changes the generation rate. Non-positive rates disable pacing.
func (p *Pacer) SetRate(gps int) {
	if gps <= 0 {
		p.step = 0
		return
	}
	p.step = time.Second / time.Duration(gps)
}

// Step returns the interval between generations, zero when unpaced.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks until one step has elapsed since the previous call and
// returns how long it slept. The first call never blocks.
func (p *Pacer) Wait() time.Duration {
	if p.step == 0 {
		return 0
	}
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	var slept time.Duration
	if due := p.last.Add(p.step); now.Before(due) {
		slept = due.Sub(now)
		p.sleep(slept)
		now = due
	}
	p.last = now
	return slept
}
