package handler

import (
	"strings"
	"time"
)

const (
	// MinDisplayDuration is the floor for how long a message stays on
	// screen, regardless of length.
	MinDisplayDuration = 2 * time.Second

	// MaxDisplayDuration caps the display time for long messages.
	MaxDisplayDuration = 10 * time.Second

	// DefaultWordsPerSecond is the assumed reading speed.
	DefaultWordsPerSecond = 3.0
)

// MessageDuration estimates how long message should stay on screen:
// word count divided by reading speed, clamped to [MinDisplayDuration,
// MaxDisplayDuration]. A non-positive wordsPerSecond means
// DefaultWordsPerSecond.
func MessageDuration(message string, wordsPerSecond float64) time.Duration {
	if wordsPerSecond <= 0 {
		wordsPerSecond = DefaultWordsPerSecond
	}
	words := len(strings.Fields(message))
	d := time.Duration(float64(words) / wordsPerSecond * float64(time.Second))
	if d < MinDisplayDuration {
		return MinDisplayDuration
	}
	if d > MaxDisplayDuration {
		return MaxDisplayDuration
	}
	return d
}
