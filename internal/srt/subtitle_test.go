package srt

import (
	"errors"
	"testing"
	"time"
)

func mustSubtitle(t *testing.T, lines ...string) *Subtitle {
	t.Helper()
	sub, err := NewSubtitle(lines)
	if err != nil {
		t.Fatalf("NewSubtitle(%q) failed: %v", lines, err)
	}
	return sub
}

func TestNewSubtitle(t *testing.T) {
	sub := mustSubtitle(t, "00:00:01,000 --> 00:00:05,000", "Hello, World!")

	wantStart, _ := ParseTimestamp("00:00:01,000")
	wantEnd, _ := ParseTimestamp("00:00:05,000")

	if !sub.Start().Equal(wantStart) {
		t.Errorf("start: got %s, want %s", sub.Start(), wantStart)
	}
	if !sub.End().Equal(wantEnd) {
		t.Errorf("end: got %s, want %s", sub.End(), wantEnd)
	}
	if sub.Text() != "Hello, World!" {
		t.Errorf("text: got %q", sub.Text())
	}
}

func TestNewSubtitleIgnoresIndexLine(t *testing.T) {
	sub := mustSubtitle(t, "42", "00:00:01,000 --> 00:00:05,000", "Hello, World!")
	if sub.Text() != "Hello, World!" {
		t.Errorf("text: got %q", sub.Text())
	}
}

func TestNewSubtitleDropsExtraLines(t *testing.T) {
	sub := mustSubtitle(t,
		"1",
		"00:00:01,000 --> 00:00:05,000",
		"Hello, World!",
		"Extra line",
	)
	if sub.Text() != "Hello, World!" {
		t.Errorf("only the first text line should be kept, got %q", sub.Text())
	}
}

func TestNewSubtitleErrors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  error
	}{
		{"no timestamp line", []string{"1", "Hello"}, ErrNoTimestamp},
		{"single line", []string{"1"}, ErrNoTimestamp},
		{
			"timestamp is last line",
			[]string{"1", "00:00:01,000 --> 00:00:05,000"},
			ErrNoText,
		},
		{
			"bad start timestamp",
			[]string{"00:00:01 --> 00:00:05,000", "Hello"},
			ErrTimestampFormat,
		},
		{
			"bad end timestamp",
			[]string{"00:00:01,000 --> 00:00:05", "Hello"},
			ErrTimestampFormat,
		},
		{
			"arrow without spaces",
			[]string{"00:00:01,000-->00:00:05,000", "Hello"},
			ErrTimestampFormat,
		},
		{
			"text after timestamp is empty once trimmed",
			[]string{"00:00:01,000 --> 00:00:05,000", "   "},
			ErrInvalidSubtitle,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSubtitle(tc.lines)
			if err == nil {
				t.Fatalf("expected error for %q", tc.lines)
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got: %v", tc.want, err)
			}
		})
	}
}

func TestSubtitleDenylist(t *testing.T) {
	phrases := []string{
		"شتركوا في القناة",
		"لا تنسوا الاشتراك في القناة",
		"لا تنسوا الاشتراك",
		"المترجم للقناة",
		"موسيقى",
		"patch",
	}

	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			_, err := NewSubtitle([]string{
				"00:00:01,000 --> 00:00:05,000",
				phrase,
			})
			if !errors.Is(err, ErrInvalidSubtitle) {
				t.Errorf("expected ErrInvalidSubtitle for %q, got: %v", phrase, err)
			}
		})
	}

	// containment, not equality
	_, err := NewSubtitle([]string{
		"00:00:01,000 --> 00:00:05,000",
		"applying a patch to the wall",
	})
	if !errors.Is(err, ErrInvalidSubtitle) {
		t.Errorf("expected substring match to reject, got: %v", err)
	}
}

func TestSubtitleExtraDenylist(t *testing.T) {
	lines := []string{"00:00:01,000 --> 00:00:05,000", "visit example.com now"}

	if _, err := NewSubtitle(lines); err != nil {
		t.Fatalf("entry should pass the built-in denylist: %v", err)
	}

	_, err := NewSubtitle(lines, "example.com")
	if !errors.Is(err, ErrInvalidSubtitle) {
		t.Errorf("expected extra phrase to reject, got: %v", err)
	}
}

func TestSubtitlePunctuationOnly(t *testing.T) {
	for _, text := range []string{"...", ",", "!?", "---"} {
		t.Run(text, func(t *testing.T) {
			_, err := NewSubtitle([]string{
				"00:00:01,000 --> 00:00:05,000",
				text,
			})
			if !errors.Is(err, ErrInvalidSubtitle) {
				t.Errorf("expected punctuation-only %q to reject, got: %v", text, err)
			}
		})
	}

	// letters mixed with punctuation pass
	sub := mustSubtitle(t, "00:00:01,000 --> 00:00:05,000", "Hello, World!")
	if !sub.IsValid() {
		t.Error("expected 'Hello, World!' to be valid")
	}
}

func TestSubtitleDuration(t *testing.T) {
	sub := mustSubtitle(t, "00:00:01,000 --> 00:00:05,000", "Hello, World!")
	if got := sub.Duration(); got != 4*time.Second {
		t.Errorf("expected 4s, got %v", got)
	}
}

func TestSubtitleDurationClampsNegative(t *testing.T) {
	// end before start clamps to zero instead of underflowing
	sub := mustSubtitle(t, "00:00:05,000 --> 00:00:01,000", "Hello, World!")
	if got := sub.Duration(); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestSubtitleMoveStart(t *testing.T) {
	sub := mustSubtitle(t, "00:00:01,000 --> 00:00:05,000", "Hello, World!")

	if err := sub.MoveStart(2*time.Second, Forward); err != nil {
		t.Fatalf("MoveStart failed: %v", err)
	}
	if got := sub.Start().String(); got != "00:00:03,000" {
		t.Errorf("start: got %s", got)
	}
	// end never moves
	if got := sub.End().String(); got != "00:00:05,000" {
		t.Errorf("end moved: got %s", got)
	}
}

func TestSubtitleRender(t *testing.T) {
	sub := mustSubtitle(t, "00:00:01,000 --> 00:00:05,000", "Hello, World!")
	want := "00:00:01,000 --> 00:00:05,000\nHello, World!\n"
	if got := sub.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
