package srt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is one SRT time-of-day value in the form HH:MM:SS,mmm.
// Components are stored exactly as parsed: only the string shape is
// checked, so minutes=75 or seconds=90 are accepted. Values always
// convert to a non-negative millisecond count.
type Timestamp struct {
	hours        int64
	minutes      int64
	seconds      int64
	milliseconds int64
}

// ParseTimestamp parses "HH:MM:SS,mmm". Each of the four components must
// be a non-negative integer; no upper bound is enforced on any of them.
func ParseTimestamp(s string) (Timestamp, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrTimestampFormat, s)
	}
	secParts := strings.Split(parts[2], ",")
	if len(secParts) != 2 {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrTimestampFormat, s)
	}

	hours, err := parseComponent(parts[0])
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: invalid hours in %q", ErrTimestampFormat, s)
	}
	minutes, err := parseComponent(parts[1])
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: invalid minutes in %q", ErrTimestampFormat, s)
	}
	seconds, err := parseComponent(secParts[0])
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: invalid seconds in %q", ErrTimestampFormat, s)
	}
	millis, err := parseComponent(secParts[1])
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: invalid milliseconds in %q", ErrTimestampFormat, s)
	}

	return Timestamp{
		hours:        hours,
		minutes:      minutes,
		seconds:      seconds,
		milliseconds: millis,
	}, nil
}

func parseComponent(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative component %d", n)
	}
	return n, nil
}

// FromMillis decomposes a millisecond count into a timestamp. Hours are
// unbounded.
func FromMillis(millis int64) Timestamp {
	totalSeconds := millis / 1000
	totalMinutes := totalSeconds / 60

	return Timestamp{
		hours:        totalMinutes / 60,
		minutes:      totalMinutes % 60,
		seconds:      totalSeconds % 60,
		milliseconds: millis % 1000,
	}
}

// Millis converts the timestamp to a total millisecond count.
func (t Timestamp) Millis() int64 {
	return t.hours*3600000 + t.minutes*60000 + t.seconds*1000 + t.milliseconds
}

// String renders the canonical form. Hours, minutes, and seconds are
// zero-padded to two digits but render wider when the value needs it;
// milliseconds are padded to three.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		t.hours, t.minutes, t.seconds, t.milliseconds)
}

// Shift moves the timestamp by delta in the given direction. Shifting
// backward past zero clamps at 00:00:00,000 rather than failing. Only a
// delta outside the representable millisecond range is an error.
func (t *Timestamp) Shift(delta time.Duration, dir Direction) error {
	ms := delta.Milliseconds()
	if ms < 0 {
		return fmt.Errorf("%w: %v", ErrShiftRange, delta)
	}

	if dir == Backward {
		ms = -ms
	}

	total := t.Millis() + ms
	if total < 0 {
		total = 0
	}
	*t = FromMillis(total)

	return nil
}

// Compare orders timestamps component by component: hours first, then
// minutes, seconds, milliseconds. Returns -1, 0, or 1.
func (t Timestamp) Compare(other Timestamp) int {
	if c := compareInt64(t.hours, other.hours); c != 0 {
		return c
	}
	if c := compareInt64(t.minutes, other.minutes); c != 0 {
		return c
	}
	if c := compareInt64(t.seconds, other.seconds); c != 0 {
		return c
	}
	return compareInt64(t.milliseconds, other.milliseconds)
}

// Equal reports component-wise equality.
func (t Timestamp) Equal(other Timestamp) bool {
	return t == other
}

// Before reports whether t orders strictly before other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.Compare(other) < 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
