package srt

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Document holds the ordered entries of one SRT file. Entry order is file
// order; entries are never deduplicated or re-sorted, and output
// numbering is always fresh, 1-based, and contiguous.
type Document struct {
	path     string
	extraDen []string
	entries  []*Subtitle
}

// NewDocument creates an empty document bound to a source path.
func NewDocument(path string) *Document {
	return &Document{path: path}
}

// AddDenyPhrases appends phrases to the rejection set used during Parse,
// on top of the built-in denylist.
func (d *Document) AddDenyPhrases(phrases ...string) {
	d.extraDen = append(d.extraDen, phrases...)
}

// Parse splits the body into blank-line-delimited blocks and keeps every
// block that forms a valid entry. A blank line discards whatever partial
// block was accumulating, so stray blank lines never corrupt the blocks
// that follow. Malformed or denylisted blocks are skipped silently;
// parsing itself cannot fail.
func (d *Document) Parse(text string) {
	text = strings.TrimPrefix(text, "\ufeff")

	var block []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			block = block[:0]
			continue
		}

		block = append(block, line)
		if len(block) < 2 {
			continue
		}

		sub, err := NewSubtitle(block, d.extraDen...)
		if err != nil {
			// not a complete block yet: an index line followed by a
			// timestamp line still needs its text line
			continue
		}
		d.entries = append(d.entries, sub)
		block = block[:0]
	}
}

// Serialize renders every entry with a fresh 1-based index, regardless of
// the numbering in the input. Pure function of the entry sequence.
func (d *Document) Serialize() string {
	var sb strings.Builder
	for i, sub := range d.entries {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(sub.Render())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ReadFile loads the whole source file and parses it, replacing any
// entries from a previous parse.
func (d *Document) ReadFile() error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", d.path, err)
	}
	d.entries = nil
	d.Parse(string(data))
	return nil
}

// WriteFile serializes the entries and writes them to path in one shot.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.Serialize()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ShiftStarts moves every entry's start time by delta in the given
// direction. End times stay put. The first shift error aborts and
// surfaces to the caller.
func (d *Document) ShiftStarts(delta time.Duration, dir Direction) error {
	for i, sub := range d.entries {
		if err := sub.MoveStart(delta, dir); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return nil
}

func (d *Document) Entries() []*Subtitle { return d.entries }

func (d *Document) Len() int { return len(d.entries) }

func (d *Document) Path() string { return d.path }
