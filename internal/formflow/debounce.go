package formflow

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid successive calls into one invocation of fn after
// a quiet period. Each Call cancels and reschedules the pending timer
// (last-write-wins, not a queue), so fn never fires more often than once per
// delay of continuous calling, and the final document always reaches fn at
// most delay after activity stops.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(Document)
	timer   *time.Timer
	pending Document
}

// NewDebouncer creates a debouncer around fn.
func NewDebouncer(delay time.Duration, fn func(Document)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call schedules doc to be delivered after the quiet period, replacing any
// previously scheduled document.
func (d *Debouncer) Call(doc Document) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = doc
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	doc := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()
	if doc != nil {
		d.fn(doc)
	}
}

// Flush delivers the pending document immediately, if any. Used when the
// session needs a deterministic save (explicit save-and-close) and in tests.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.fire()
}

// Stop cancels any pending delivery without invoking fn.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
