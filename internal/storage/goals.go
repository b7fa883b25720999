package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

const (
	GoalsKey       = "focus_today_goals"
	timerKeyPrefix = "goal_timer_"
)

// Entry is the persisted part of a goal. Timer start times live under
// their own per-index keys.
type Entry struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// KV is the minimal key-value surface the goal adapter needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Goals persists the goal list and per-slot timer starts on top of a KV.
type Goals struct {
	kv KV
}

func NewGoals(kv KV) *Goals {
	return &Goals{kv: kv}
}

func TimerKey(index int) string {
	return timerKeyPrefix + strconv.Itoa(index)
}

func (g *Goals) SaveList(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := g.kv.Set(GoalsKey, string(data)); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	return nil
}

// LoadList returns the saved goals. Missing or malformed data yields an
// empty list; only backend failures are returned.
func (g *Goals) LoadList() ([]Entry, error) {
	data, ok, err := g.kv.Get(GoalsKey)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	if !ok || strings.TrimSpace(data) == "" {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		log.Printf("storage: discarding malformed goal list: %v", err)
		return []Entry{}, nil
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// TimerStart returns the persisted countdown start for a slot. Values that
// do not parse as a millisecond timestamp count as absent.
func (g *Goals) TimerStart(index int) (time.Time, bool, error) {
	raw, ok, err := g.kv.Get(TimerKey(index))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("load timer %d: %w", index, err)
	}
	if !ok {
		return time.Time{}, false, nil
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		log.Printf("storage: ignoring malformed timer %d: %q", index, raw)
		return time.Time{}, false, nil
	}
	return time.UnixMilli(ms), true, nil
}

func (g *Goals) SetTimerStart(index int, start time.Time) error {
	if err := g.kv.Set(TimerKey(index), strconv.FormatInt(start.UnixMilli(), 10)); err != nil {
		return fmt.Errorf("save timer %d: %w", index, err)
	}
	return nil
}

func (g *Goals) ClearTimerStart(index int) error {
	if err := g.kv.Delete(TimerKey(index)); err != nil {
		return fmt.Errorf("clear timer %d: %w", index, err)
	}
	return nil
}
