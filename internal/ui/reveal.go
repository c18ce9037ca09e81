package ui

import (
	"fmt"
	"sync"
	"time"
)

// CSS hooks shared with reveal.js.
const (
	RevealClass        = "reveal"
	RevealVisibleClass = "is-visible"
)

// ObserverOptions configures the viewport intersection trigger.
type ObserverOptions struct {
	// Threshold is the visible ratio of the element that counts as intersecting.
	Threshold float64
	// RootMargin grows or shrinks the viewport, CSS margin syntax.
	RootMargin string
}

// DefaultObserverOptions fire once a tenth of the element is on screen,
// measured against a viewport shortened by 50px at the bottom.
var DefaultObserverOptions = ObserverOptions{
	Threshold:  0.1,
	RootMargin: "0px 0px -50px 0px",
}

// IntersectionEntry is one notification from an Observer.
type IntersectionEntry struct {
	IsIntersecting bool
	Ratio          float64
}

// Observer is a viewport intersection source.
type Observer interface {
	Observe(opts ObserverOptions, callback func(IntersectionEntry))
	Disconnect()
}

// Reveal defers the entrance transition of its content until the content
// first scrolls into view. It fires at most once per mount.
type Reveal struct {
	Delay time.Duration

	mu       sync.Mutex
	visible  bool
	observer Observer
}

// NewReveal creates a hidden reveal whose transition starts after delay.
func NewReveal(delay time.Duration) *Reveal {
	return &Reveal{Delay: delay}
}

// Mount starts observing. A nil observer means the platform has no
// intersection support, in which case the content is shown immediately.
func (r *Reveal) Mount(obs Observer) {
	r.mu.Lock()
	if obs == nil {
		r.visible = true
		r.mu.Unlock()
		return
	}
	if r.visible {
		r.mu.Unlock()
		return
	}
	r.observer = obs
	r.mu.Unlock()

	obs.Observe(DefaultObserverOptions, r.Intersect)
}

// Intersect handles an observer notification. The first intersecting entry
// makes the reveal visible and disconnects the observer; later entries are
// ignored.
func (r *Reveal) Intersect(e IntersectionEntry) {
	r.mu.Lock()
	if r.visible || !e.IsIntersecting {
		r.mu.Unlock()
		return
	}
	r.visible = true
	obs := r.observer
	r.observer = nil
	r.mu.Unlock()

	if obs != nil {
		obs.Disconnect()
	}
}

// Unmount stops observing without changing visibility.
func (r *Reveal) Unmount() {
	r.mu.Lock()
	obs := r.observer
	r.observer = nil
	r.mu.Unlock()

	if obs != nil {
		obs.Disconnect()
	}
}

// Visible reports whether the entrance has fired.
func (r *Reveal) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

// Classes returns the CSS classes for the current state.
func (r *Reveal) Classes() string {
	if r.Visible() {
		return RevealClass + " " + RevealVisibleClass
	}
	return RevealClass
}

// Style returns the inline style staggering the transition start.
func (r *Reveal) Style() string {
	return fmt.Sprintf("transition-delay: %dms", r.Delay.Milliseconds())
}
