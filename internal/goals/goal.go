// Package goals owns the daily goal list: text edits, completion, per-slot
// 24 hour countdowns and the progress summary.
package goals

import (
	"fmt"
	"strings"
	"time"
)

// Window is how long a goal has from its first non-empty edit.
const Window = 24 * time.Hour

const ExpiredText = "Time's up!"

type Goal struct {
	Text      string
	Completed bool
	// StartTime is the persisted countdown start, zero when none is known.
	StartTime time.Time
	// Countdown is the last rendered countdown line.
	Countdown string
}

// Filled reports whether the slot holds non-blank text.
func (g Goal) Filled() bool {
	return strings.TrimSpace(g.Text) != ""
}

// Summary is the page-wide progress.
type Summary struct {
	Completed int
	Total     int
}

// Progress counts completed, non-blank goals.
func Progress(list []Goal) Summary {
	s := Summary{Total: len(list)}
	for _, g := range list {
		if g.Completed && g.Filled() {
			s.Completed++
		}
	}
	return s
}

func (s Summary) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

func (s Summary) Label() string {
	return fmt.Sprintf("%d/%d Completed", s.Completed, s.Total)
}

// FormatRemaining renders the time left, truncating to whole seconds.
func FormatRemaining(d time.Duration) string {
	ms := d.Milliseconds()
	hours := ms / (1000 * 60 * 60)
	minutes := (ms % (1000 * 60 * 60)) / (1000 * 60)
	seconds := (ms % (1000 * 60)) / 1000
	return fmt.Sprintf("⏳ %dh %dm %ds left", hours, minutes, seconds)
}
