package ui

import (
	"strings"
	"sync"
	"time"
)

// ContactConfirmDelay is how long a contact button shows its confirmation
// label after a click.
const ContactConfirmDelay = 2500 * time.Millisecond

// DefaultConfirmLabel is shown while the contact link opens.
const DefaultConfirmLabel = "Abriendo..."

// Timer is a pending one-shot callback.
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// ContactButton wraps a contact link. A click swaps the visible label for a
// confirmation label, then reverts after ContactConfirmDelay whether or not
// the navigation worked. Clicking again while confirming restarts the delay.
type ContactButton struct {
	Href         string
	Label        string
	ConfirmLabel string

	clock Clock

	mu        sync.Mutex
	clicked   bool
	timer     Timer
	gen       uint64
	unmounted bool
}

// NewContactButton creates a button. A nil clock uses SystemClock.
func NewContactButton(href, label string, clock Clock) *ContactButton {
	if clock == nil {
		clock = SystemClock
	}
	return &ContactButton{
		Href:         href,
		Label:        label,
		ConfirmLabel: DefaultConfirmLabel,
		clock:        clock,
	}
}

// Click shows the confirmation label and (re)arms the revert timer.
func (b *ContactButton) Click() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.clicked = true
	b.gen++
	gen := b.gen
	b.timer = b.clock.AfterFunc(ContactConfirmDelay, func() { b.revert(gen) })
}

// revert runs on the timer. A stale generation means a later click rearmed
// the timer, so only the newest one may revert.
func (b *ContactButton) revert(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted || gen != b.gen {
		return
	}
	b.clicked = false
	b.timer = nil
}

// Unmount cancels any pending revert. The button ignores clicks afterwards.
func (b *ContactButton) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.unmounted = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// Clicked reports whether the confirmation label is showing.
func (b *ContactButton) Clicked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clicked
}

// VisibleLabel returns the label currently shown.
func (b *ContactButton) VisibleLabel() string {
	if b.Clicked() {
		return b.ConfirmLabel
	}
	return b.Label
}

// Target is the link target: mail links stay in the page, everything else
// opens a new tab.
func (b *ContactButton) Target() string {
	if strings.HasPrefix(b.Href, "mailto:") {
		return "_self"
	}
	return "_blank"
}
