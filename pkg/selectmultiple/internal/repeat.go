package internal

import (
	"time"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
)

// ButtonRepeat turns a held navigation button into repeated presses: the
// first repeat fires after delay, then one every interval. Only the most
// recently pressed button repeats.
type ButtonRepeat struct {
	held     constants.VirtualButton
	since    time.Time
	repeated bool
	delay    time.Duration
	interval time.Duration
	now      func() time.Time
}

func NewButtonRepeat(delay, interval time.Duration) ButtonRepeat {
	return ButtonRepeat{delay: delay, interval: interval, now: time.Now}
}

// Press starts repeating button.
func (r *ButtonRepeat) Press(button constants.VirtualButton) {
	r.held = button
	r.since = r.clock()
	r.repeated = false
}

// Release stops repeating if button is the one held. It reports whether
// it was.
func (r *ButtonRepeat) Release(button constants.VirtualButton) bool {
	if button == constants.VirtualButtonUnassigned || button != r.held {
		return false
	}
	r.Reset()
	return true
}

func (r *ButtonRepeat) Held() constants.VirtualButton {
	return r.held
}

// Update returns the held button when a repeat is due, otherwise
// VirtualButtonUnassigned. Call it once per frame.
func (r *ButtonRepeat) Update() constants.VirtualButton {
	if r.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned
	}

	threshold := r.interval
	if !r.repeated {
		threshold = r.delay
	}

	now := r.clock()
	if now.Sub(r.since) < threshold {
		return constants.VirtualButtonUnassigned
	}
	r.since = now
	r.repeated = true
	return r.held
}

func (r *ButtonRepeat) Reset() {
	r.held = constants.VirtualButtonUnassigned
	r.repeated = false
}

func (r *ButtonRepeat) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}
