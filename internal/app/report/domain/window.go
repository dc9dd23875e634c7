package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// DefaultWindowDays is the recency window used when a request does not
// specify one.
const DefaultWindowDays = 30

// Window is the recency window for the order activity report: orders
// whose calendar date falls within the last Days days of the reference
// time count as recent.
type Window struct {
	Days int
}

// NewWindow creates a Window, rejecting non-positive lengths.
func NewWindow(days int) (Window, error) {
	if days <= 0 {
		return Window{}, ErrInvalidWindow
	}
	return Window{Days: days}, nil
}

// CutoffFrom returns the earliest calendar date still inside the
// window, anchored to now. The comparison is on the date component
// only, evaluated in UTC: an order placed at any time of day on the
// cutoff date qualifies, regardless of its time-of-day.
func (w Window) CutoffFrom(now time.Time) civil.Date {
	return civil.DateOf(now.UTC()).AddDays(-w.Days)
}
