// Package seed holds the calendar date used to pin the timestamp component
// of generated identifiers.
package seed

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the only accepted input format (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// MinYear is the earliest supported year; Unix milliseconds must be non-negative
const MinYear = 1970

// ErrInvalidDate is matched by every error returned from Parse
var ErrInvalidDate = errors.New("invalid date")

// ParseError reports input that does not match YYYY-MM-DD or is not a real calendar date
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes ParseError match ErrInvalidDate
func (e *ParseError) Is(target error) bool { return target == ErrInvalidDate }

// RangeError reports a well-formed date before MinYear
type RangeError struct {
	Input string
	Year  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: dates before %d are not supported", e.Input, MinYear)
}

// Is makes RangeError match ErrInvalidDate
func (e *RangeError) Is(target error) bool { return target == ErrInvalidDate }

// DateSeed is a validated calendar date. It is not a timestamp by itself:
// Timestamp combines it with the current time of day.
type DateSeed struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse validates s as YYYY-MM-DD with a year of at least MinYear
func Parse(s string) (DateSeed, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DateSeed{}, &ParseError{Input: s, Err: err}
	}
	if t.Year() < MinYear {
		return DateSeed{}, &RangeError{Input: s, Year: t.Year()}
	}
	return DateSeed{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) DateSeed {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// At returns now (in UTC) with its calendar date replaced by the seed
func (d DateSeed) At(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(d.Year, d.Month, d.Day,
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}

// Timestamp returns the Unix millisecond timestamp of At(now)
func (d DateSeed) Timestamp(now time.Time) uint64 {
	return uint64(d.At(now).UnixMilli())
}

// String formats the seed back to YYYY-MM-DD
func (d DateSeed) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
