package testutil

import (
	"context"
	"sync"
)

// Popup is one desktop notification captured by DesktopRecorder.
type Popup struct {
	Title string
	Body  string
}

// DesktopRecorder stands in for the platform popup mechanism. It records
// every notification and returns Err, if set.
type DesktopRecorder struct {
	Err error

	mu     sync.Mutex
	popups []Popup
}

// Notify records the popup.
func (r *DesktopRecorder) Notify(_ context.Context, title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.popups = append(r.popups, Popup{Title: title, Body: body})
	return r.Err
}

// Available always reports true.
func (r *DesktopRecorder) Available() bool { return true }

// Popups returns a copy of the recorded notifications.
func (r *DesktopRecorder) Popups() []Popup {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Popup(nil), r.popups...)
}

// Count returns the number of recorded notifications.
func (r *DesktopRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.popups)
}
