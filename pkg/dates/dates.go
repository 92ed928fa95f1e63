// Package dates provides the reference-date helpers used by dashboard
// update jobs, which run once per month and constantly need the
// boundaries of the reference month and of the month before it.
package dates

import (
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/gigc-analytics/dashlib/pkg/errors"
)

// Selector identifies which month boundary Format renders
type Selector string

const (
	// FirstDate is the first day of the reference month
	FirstDate Selector = "first_date"
	// LastDate is the last day of the reference month
	LastDate Selector = "last_date"
	// PrevFirstDate is the first day of the month before the reference month
	PrevFirstDate Selector = "prev_first_date"
	// PrevLastDate is the last day of the month before the reference month
	PrevLastDate Selector = "prev_last_date"
)

// RefLayout is the layout reference months are parsed from
const RefLayout = "2006-01"

// DefaultLayout is the layout boundaries are rendered with by default
const DefaultLayout = "2006-01-02"

// ReferenceDate anchors a period of analysis to one month and derives the
// dates an update job needs from it.
type ReferenceDate struct {
	ref time.Time
}

// New parses a reference month in "YYYY-MM" form. An empty string anchors
// to the current month.
func New(ref string) (*ReferenceDate, error) {
	if ref == "" {
		return At(time.Now()), nil
	}

	t, err := time.Parse(RefLayout, ref)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "invalid reference month, want YYYY-MM").
			WithDetail("input", ref)
	}
	return At(t), nil
}

// At anchors a reference date to the month containing t
func At(t time.Time) *ReferenceDate {
	return &ReferenceDate{ref: t}
}

// FirstDate returns midnight on the first day of the reference month
func (r *ReferenceDate) FirstDate() time.Time {
	return time.Date(r.ref.Year(), r.ref.Month(), 1, 0, 0, 0, 0, r.ref.Location())
}

// LastDate returns midnight on the last day of the reference month
func (r *ReferenceDate) LastDate() time.Time {
	return r.FirstDate().AddDate(0, 1, -1)
}

// PrevFirstDate returns midnight on the first day of the previous month
func (r *ReferenceDate) PrevFirstDate() time.Time {
	return r.FirstDate().AddDate(0, -1, 0)
}

// PrevLastDate returns midnight on the last day of the previous month
func (r *ReferenceDate) PrevLastDate() time.Time {
	return r.FirstDate().AddDate(0, 0, -1)
}

// MonthSpan returns the reference month as a half-open time span, from the
// first day of the month up to the first day of the next one.
func (r *ReferenceDate) MonthSpan() timespan.TimeSpan {
	first := r.FirstDate()
	return timespan.BetweenTimes(first, first.AddDate(0, 1, 0))
}

// Format renders the selected boundary with the given layout. An empty
// layout uses DefaultLayout.
func (r *ReferenceDate) Format(sel Selector, layout string) (string, error) {
	if layout == "" {
		layout = DefaultLayout
	}

	switch sel {
	case FirstDate:
		return r.FirstDate().Format(layout), nil
	case LastDate:
		return r.LastDate().Format(layout), nil
	case PrevFirstDate:
		return r.PrevFirstDate().Format(layout), nil
	case PrevLastDate:
		return r.PrevLastDate().Format(layout), nil
	default:
		return "", errors.New(errors.ErrorTypeValidation, "invalid date selector").
			WithDetail("selector", string(sel))
	}
}
