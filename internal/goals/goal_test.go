package goals

import (
	"math"
	"testing"
	"time"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name    string
		list    []Goal
		want    Summary
		percent float64
		label   string
	}{
		{"empty list", nil, Summary{0, 0}, 0, "0/0 Completed"},
		{"none done", []Goal{{Text: "a"}, {Text: "b"}}, Summary{0, 2}, 0, "0/2 Completed"},
		{"one of three", []Goal{{Text: "a", Completed: true}, {Text: "b"}, {Text: "c"}}, Summary{1, 3}, 100.0 / 3, "1/3 Completed"},
		{"blank completed ignored", []Goal{{Text: "  ", Completed: true}, {Text: "b", Completed: true}}, Summary{1, 2}, 50, "1/2 Completed"},
		{"all done", []Goal{{Text: "a", Completed: true}}, Summary{1, 1}, 100, "1/1 Completed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.list)
			if got != tt.want {
				t.Fatalf("Progress = %+v, want %+v", got, tt.want)
			}
			if got.Completed < 0 || got.Completed > got.Total {
				t.Errorf("completed %d outside [0, %d]", got.Completed, got.Total)
			}
			if math.Abs(got.Percent()-tt.percent) > 1e-9 {
				t.Errorf("Percent = %v, want %v", got.Percent(), tt.percent)
			}
			if got.Label() != tt.label {
				t.Errorf("Label = %q, want %q", got.Label(), tt.label)
			}
		})
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{Window, "⏳ 24h 0m 0s left"},
		{Window - time.Millisecond, "⏳ 23h 59m 59s left"},
		{time.Hour + 2*time.Minute + 3*time.Second + 999*time.Millisecond, "⏳ 1h 2m 3s left"},
		{999 * time.Millisecond, "⏳ 0h 0m 0s left"},
	}
	for _, tt := range tests {
		if got := FormatRemaining(tt.d); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSchedulerReplacesPreviousStart(t *testing.T) {
	s := newScheduler()
	first := s.start(0)
	second := s.start(0)
	if s.live(first) {
		t.Error("first ref still live after restart")
	}
	if !s.live(second) {
		t.Error("second ref not live")
	}
	if s.count() != 1 {
		t.Errorf("count = %d, want 1", s.count())
	}
	other := s.start(1)
	s.stop(0)
	if s.live(second) || !s.live(other) {
		t.Error("stop affected the wrong slot")
	}
	s.stopAll()
	if s.count() != 0 || s.live(other) {
		t.Error("stopAll left live refs")
	}
}
