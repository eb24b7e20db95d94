package srt

import "errors"

var (
	// malformed HH:MM:SS,mmm string
	ErrTimestampFormat = errors.New("invalid timestamp format")
	// block has no "-->" line
	ErrNoTimestamp = errors.New("no timestamp found")
	// timestamp line is the last line of the block
	ErrNoText = errors.New("no text provided")
	// text is empty, denylisted, or punctuation-only
	ErrInvalidSubtitle = errors.New("invalid subtitle")
	// shift delta outside the representable millisecond range
	ErrShiftRange = errors.New("shift duration out of range")
)
