// Package daterange normalizes named or explicit time windows into
// concrete inclusive start/end calendar dates.
package daterange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Default trailing window applied when no token is given.
const defaultTrailingDays = 90

// Range is an inclusive calendar-date window. Both bounds are UTC
// midnights; time-of-day is never significant.
type Range struct {
	Start time.Time
	End   time.Time
}

var (
	quarterRe  = regexp.MustCompile(`^[Qq]([1-4])(?: (\d{4}))?$`)
	halfRe     = regexp.MustCompile(`^[Hh]([1-2])(?: (\d{4}))?$`)
	lastDaysRe = regexp.MustCompile(`^last (\d+) days?$`)
	lastMosRe  = regexp.MustCompile(`^last (\d+) months?$`)
	yearRe     = regexp.MustCompile(`^(\d{4})$`)
	explicitRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) to (\d{4}-\d{2}-\d{2})$`)
)

// Resolve maps a range token to a concrete window. The reference time is
// injected so resolution stays deterministic and testable; an omitted
// year defaults to now's year and relative windows end on now's date.
// An empty token resolves to the last 90 days ending today.
func Resolve(token string, now time.Time) (Range, error) {
	today := midnight(now)
	token = strings.TrimSpace(token)

	switch {
	case token == "":
		return Range{Start: today.AddDate(0, 0, -defaultTrailingDays), End: today}, nil

	case quarterRe.MatchString(token):
		m := quarterRe.FindStringSubmatch(token)
		q, _ := strconv.Atoi(m[1])
		year := yearOrDefault(m[2], now)
		start := time.Date(year, time.Month(3*q-2), 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: lastDayOf(start.AddDate(0, 2, 0))}, nil

	case halfRe.MatchString(token):
		m := halfRe.FindStringSubmatch(token)
		h, _ := strconv.Atoi(m[1])
		year := yearOrDefault(m[2], now)
		start := time.Date(year, time.Month(6*h-5), 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: lastDayOf(start.AddDate(0, 5, 0))}, nil

	case lastDaysRe.MatchString(token):
		m := lastDaysRe.FindStringSubmatch(token)
		n, _ := strconv.Atoi(m[1])
		if n < 1 {
			return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, token)
		}
		return Range{Start: today.AddDate(0, 0, -n), End: today}, nil

	case lastMosRe.MatchString(token):
		m := lastMosRe.FindStringSubmatch(token)
		n, _ := strconv.Atoi(m[1])
		if n < 1 {
			return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, token)
		}
		return Range{Start: today.AddDate(0, -n, 0), End: today}, nil

	case yearRe.MatchString(token):
		year, _ := strconv.Atoi(token)
		return Range{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}, nil

	case explicitRe.MatchString(token):
		m := explicitRe.FindStringSubmatch(token)
		start, err := time.ParseInLocation("2006-01-02", m[1], time.UTC)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, token, err)
		}
		end, err := time.ParseInLocation("2006-01-02", m[2], time.UTC)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, token, err)
		}
		if start.After(end) {
			return Range{}, fmt.Errorf("%w: %q: start after end", ErrInvalidRange, token)
		}
		return Range{Start: start, End: end}, nil
	}

	return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, token)
}

// Contains reports whether a timestamp falls inside the window. The end
// bound is inclusive through the whole end day.
func (r Range) Contains(ts time.Time) bool {
	d := midnight(ts)
	return !d.Before(r.Start) && !d.After(r.End)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func yearOrDefault(s string, now time.Time) int {
	if s == "" {
		return now.UTC().Year()
	}
	y, _ := strconv.Atoi(s)
	return y
}

// lastDayOf returns the final calendar day of t's month.
func lastDayOf(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1)
}
