package srt

import (
	"fmt"
	"strings"
	"time"
)

const timeSeparator = " --> "

// Promotional and credit phrases that mark an entry as spam. Matching is
// case-sensitive substring containment.
var denylist = []string{
	"شتركوا في القناة",
	"لا تنسوا الاشتراك في القناة",
	"لا تنسوا الاشتراك",
	"المترجم للقناة",
	"موسيقى",
	"patch",
}

// Subtitle is one validated entry: a start time, an end time, and a
// single trimmed text line.
type Subtitle struct {
	start Timestamp
	end   Timestamp
	text  string
}

// NewSubtitle builds an entry from the raw lines of a block. Lines before
// the "-->" line (usually a numeric index) are ignored; only the first
// line after it becomes the text, anything further is dropped. Extra
// denylist phrases are checked on top of the built-in set.
func NewSubtitle(lines []string, extraDeny ...string) (*Subtitle, error) {
	tsIndex := -1
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			tsIndex = i
			break
		}
	}
	if tsIndex < 0 {
		return nil, ErrNoTimestamp
	}
	if tsIndex+1 >= len(lines) {
		return nil, ErrNoText
	}

	parts := strings.Split(lines[tsIndex], timeSeparator)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrTimestampFormat, lines[tsIndex])
	}

	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return nil, err
	}

	sub := &Subtitle{
		start: start,
		end:   end,
		text:  strings.TrimSpace(lines[tsIndex+1]),
	}

	if !sub.IsValid(extraDeny...) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubtitle, sub.text)
	}

	return sub, nil
}

// IsValid reports whether the text is non-empty, free of denylisted
// phrases, and not composed entirely of ASCII punctuation.
func (s *Subtitle) IsValid(extraDeny ...string) bool {
	if s.text == "" {
		return false
	}
	for _, phrase := range denylist {
		if strings.Contains(s.text, phrase) {
			return false
		}
	}
	for _, phrase := range extraDeny {
		if strings.Contains(s.text, phrase) {
			return false
		}
	}
	return !allPunctuation(s.text)
}

// Duration is the on-screen time of the entry. An end before the start
// yields zero rather than a negative duration.
func (s *Subtitle) Duration() time.Duration {
	ms := s.end.Millis() - s.start.Millis()
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}

// MoveStart shifts the start time only; the end time never moves.
func (s *Subtitle) MoveStart(delta time.Duration, dir Direction) error {
	return s.start.Shift(delta, dir)
}

// Render emits the canonical two-line form, without the index line:
//
//	00:00:01,000 --> 00:00:05,000
//	Hello, World!
func (s *Subtitle) Render() string {
	return fmt.Sprintf("%s --> %s\n%s\n", s.start, s.end, s.text)
}

func (s *Subtitle) Start() Timestamp { return s.start }
func (s *Subtitle) End() Timestamp   { return s.end }
func (s *Subtitle) Text() string     { return s.text }

func allPunctuation(s string) bool {
	for _, r := range s {
		if !isASCIIPunct(r) {
			return false
		}
	}
	return true
}

func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/',
		r >= ':' && r <= '@',
		r >= '[' && r <= '`',
		r >= '{' && r <= '~':
		return true
	}
	return false
}
