package goals

import (
	"errors"
	"fmt"
	"time"

	"focustoday/internal/storage"
)

var ErrIndexOutOfRange = errors.New("goal index out of range")

// Store is the persistence the manager needs; storage.Goals implements it.
type Store interface {
	SaveList(entries []storage.Entry) error
	LoadList() ([]storage.Entry, error)
	TimerStart(index int) (time.Time, bool, error)
	SetTimerStart(index int, start time.Time) error
	ClearTimerStart(index int) error
}

type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithDefaultSlots sets how many empty goals are seeded when nothing is saved.
func WithDefaultSlots(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.defaultSlots = n
		}
	}
}

// Manager is the single owner of the goal list. Every mutation goes through
// it and is persisted before it returns. It is not safe for concurrent use;
// callers drive it from one event loop.
type Manager struct {
	store        Store
	now          func() time.Time
	defaultSlots int

	goals   []Goal
	sched   *scheduler
	pending []TimerRef
	errFlag bool
}

func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:        store,
		now:          time.Now,
		defaultSlots: 3,
		sched:        newScheduler(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init loads the saved list, or seeds empty slots when there is none, and
// resumes countdowns for open goals.
func (m *Manager) Init() error {
	m.sched.stopAll()
	m.goals = nil
	m.pending = nil
	m.errFlag = false

	entries, err := m.store.LoadList()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		for i, n := 0, m.defaultSlots; i < n; i++ {
			if err := m.addGoal(storage.Entry{}); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range entries {
		if err := m.addGoal(e); err != nil {
			return err
		}
	}
	return nil
}

// Goals returns a copy of the current list.
func (m *Manager) Goals() []Goal {
	out := make([]Goal, len(m.goals))
	copy(out, m.goals)
	return out
}

func (m *Manager) Len() int {
	return len(m.goals)
}

func (m *Manager) Progress() Summary {
	return Progress(m.goals)
}

// ErrorSignal reports whether the last completion toggle was rejected and
// no input has been focused since.
func (m *Manager) ErrorSignal() bool {
	return m.errFlag
}

// Focus clears the error signal.
func (m *Manager) Focus() {
	m.errFlag = false
}

// Pending drains the countdowns started since the last call.
func (m *Manager) Pending() []TimerRef {
	out := m.pending
	m.pending = nil
	return out
}

// Running reports whether slot index has a live countdown.
func (m *Manager) Running(index int) bool {
	return m.sched.running(index)
}

// Add appends an empty goal and saves the list.
func (m *Manager) Add() error {
	if err := m.addGoal(storage.Entry{}); err != nil {
		return err
	}
	return m.save()
}

func (m *Manager) addGoal(e storage.Entry) error {
	g := Goal{Text: e.Text, Completed: e.Completed}
	if !g.Filled() {
		g.Completed = false
	}
	m.goals = append(m.goals, g)
	idx := len(m.goals) - 1
	if !g.Filled() || g.Completed {
		return nil
	}
	start, ok, err := m.store.TimerStart(idx)
	if err != nil {
		return err
	}
	if ok {
		m.goals[idx].StartTime = start
		m.startCountdown(idx)
	}
	return nil
}

// Edit replaces the text of goal index. Blank text resets the slot;
// non-blank text opens a 24 hour window if none is recorded yet.
func (m *Manager) Edit(index int, text string) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	g := &m.goals[index]
	g.Text = text
	if !g.Filled() {
		g.Completed = false
		g.Countdown = ""
		g.StartTime = time.Time{}
		m.sched.stop(index)
		if err := m.store.ClearTimerStart(index); err != nil {
			return err
		}
		return m.save()
	}

	start, ok, err := m.store.TimerStart(index)
	if err != nil {
		return err
	}
	if !ok {
		start = m.now()
		if err := m.store.SetTimerStart(index, start); err != nil {
			return err
		}
		g.StartTime = start
		m.startCountdown(index)
	} else {
		g.StartTime = start
	}
	return m.save()
}

// Toggle flips completion of goal index. It is rejected, setting the error
// signal, unless every goal has text. The bool reports whether it applied.
func (m *Manager) Toggle(index int) (bool, error) {
	if err := m.checkIndex(index); err != nil {
		return false, err
	}
	for _, g := range m.goals {
		if !g.Filled() {
			m.errFlag = true
			return false, nil
		}
	}

	g := &m.goals[index]
	g.Completed = !g.Completed
	m.errFlag = false
	if g.Completed {
		m.sched.stop(index)
	} else {
		start, ok, err := m.store.TimerStart(index)
		if err != nil {
			return true, err
		}
		if ok {
			g.StartTime = start
			m.startCountdown(index)
		}
	}
	return true, m.save()
}

// Remove deletes goal index. Later goals shift down one slot and their
// persisted timers move with them.
func (m *Manager) Remove(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	m.sched.stopAll()
	m.pending = nil

	last := len(m.goals) - 1
	for i := index; i < last; i++ {
		start, ok, err := m.store.TimerStart(i + 1)
		if err != nil {
			return err
		}
		if ok {
			err = m.store.SetTimerStart(i, start)
		} else {
			err = m.store.ClearTimerStart(i)
		}
		if err != nil {
			return err
		}
	}
	if err := m.store.ClearTimerStart(last); err != nil {
		return err
	}

	m.goals = append(m.goals[:index], m.goals[index+1:]...)
	if err := m.save(); err != nil {
		return err
	}
	return m.rewire()
}

// rewire restarts the countdown of every goal from its persisted start.
func (m *Manager) rewire() error {
	for i := range m.goals {
		g := &m.goals[i]
		if !g.Filled() {
			g.Countdown = ""
			g.StartTime = time.Time{}
			continue
		}
		start, ok, err := m.store.TimerStart(i)
		if err != nil {
			return err
		}
		if !ok {
			g.StartTime = time.Time{}
			continue
		}
		g.StartTime = start
		if !g.Completed {
			m.startCountdown(i)
		}
	}
	return nil
}

// Advance recomputes the countdown behind ref. It returns false once the
// countdown has stopped or ref was replaced, and the caller must not tick
// it again.
func (m *Manager) Advance(ref TimerRef) bool {
	if !m.sched.live(ref) {
		return false
	}
	if m.recompute(ref.Index) {
		return true
	}
	m.sched.stop(ref.Index)
	return false
}

func (m *Manager) startCountdown(index int) {
	ref := m.sched.start(index)
	if !m.recompute(index) {
		m.sched.stop(index)
		return
	}
	m.pending = append(m.pending, ref)
}

// recompute refreshes the countdown text and reports whether it should keep
// ticking.
func (m *Manager) recompute(index int) bool {
	g := &m.goals[index]
	if g.Completed {
		return false
	}
	end := g.StartTime.Add(Window)
	diff := end.Sub(m.now())
	if diff <= 0 {
		g.Countdown = ExpiredText
		return false
	}
	g.Countdown = FormatRemaining(diff)
	return true
}

func (m *Manager) save() error {
	entries := make([]storage.Entry, len(m.goals))
	for i, g := range m.goals {
		entries[i] = storage.Entry{Text: g.Text, Completed: g.Completed}
	}
	return m.store.SaveList(entries)
}

func (m *Manager) checkIndex(index int) error {
	if index < 0 || index >= len(m.goals) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return nil
}
