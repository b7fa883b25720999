package testutil

import (
	"errors"
	"sort"
	"time"
)

// MemKV is an in-memory storage.KV for tests.
type MemKV struct {
	Data map[string]string

	// FailWrites makes Set and Delete return ErrInjected.
	FailWrites bool
}

var ErrInjected = errors.New("injected failure")

func NewMemKV() *MemKV {
	return &MemKV{Data: map[string]string{}}
}

func (m *MemKV) Get(key string) (string, bool, error) {
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *MemKV) Set(key, value string) error {
	if m.FailWrites {
		return ErrInjected
	}
	m.Data[key] = value
	return nil
}

func (m *MemKV) Delete(key string) error {
	if m.FailWrites {
		return ErrInjected
	}
	delete(m.Data, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *MemKV) Keys() []string {
	keys := make([]string, 0, len(m.Data))
	for k := range m.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clock is a manually advanced time source.
type Clock struct {
	T time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{T: start}
}

func (c *Clock) Now() time.Time {
	return c.T
}

func (c *Clock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
