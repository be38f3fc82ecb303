// Package refdate resolves the reference point a dashboard request is
// evaluated against: a month name, a year and an ISO calendar date.
package refdate

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date layout used by daily statistics.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned for a date that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid reference date")

// Point is the (month, year, date) triple used to select "current"
// sub-views from yearly statistics.
type Point struct {
	Month string // full English month name, e.g. "November"
	Year  int
	Date  string // YYYY-MM-DD
}

// FromTime builds a Point from t, interpreted in UTC.
func FromTime(t time.Time) Point {
	t = t.UTC()
	return Point{
		Month: t.Month().String(),
		Year:  t.Year(),
		Date:  t.Format(DateLayout),
	}
}

// Parse builds a Point from a YYYY-MM-DD string.
func Parse(s string) (Point, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Point{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

func (p Point) String() string {
	return p.Date
}

// Resolver produces the reference point for a request.
// A zero Resolver follows the wall clock.
type Resolver struct {
	fixed *Point
	now   func() time.Time
}

// NewResolver returns a Resolver pinned to fixedDate, or following the
// clock when fixedDate is empty.
func NewResolver(fixedDate string) (*Resolver, error) {
	r := &Resolver{now: time.Now}
	if fixedDate == "" {
		return r, nil
	}
	p, err := Parse(fixedDate)
	if err != nil {
		return nil, err
	}
	r.fixed = &p
	return r, nil
}

// WithClock returns a copy of r that reads the time from now.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	cp := *r
	cp.now = now
	return &cp
}

// Fixed reports whether r is pinned to a configured date.
func (r *Resolver) Fixed() bool {
	return r.fixed != nil
}

// Resolve returns the point for a request. A non-empty override takes
// precedence over both the configured date and the clock.
func (r *Resolver) Resolve(override string) (Point, error) {
	if override != "" {
		return Parse(override)
	}
	if r.fixed != nil {
		return *r.fixed, nil
	}
	now := r.now
	if now == nil {
		now = time.Now
	}
	return FromTime(now()), nil
}
