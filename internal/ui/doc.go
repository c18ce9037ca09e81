// Package ui models the per-component interaction state of the site:
// scroll reveals, accordion rows and contact buttons.
//
// The browser scripts under web/static/js drive the same state transitions
// client-side; the types here are what the server renders from and what the
// tests exercise headlessly. Class names and timings are shared through the
// exported constants so both sides agree.
package ui
