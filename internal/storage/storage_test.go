package storage

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite", filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreGetSetDelete(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}
	if err := s.Set("k", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", "two"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || v != "two" {
		t.Fatalf("Get(k) = %q, %v, %v", v, ok, err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("key still present after delete")
	}
	// deleting an absent key is not an error
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	s, err := Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open("", path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if v, ok, err := s.Get("k"); err != nil || !ok || v != "v" {
		t.Fatalf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "x")
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("err = %v, want ErrUnknownDriver", err)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open("sqlite", ""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := Open("postgres", ""); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestRebind(t *testing.T) {
	pg := &Store{driver: "postgres"}
	got := pg.rebind(`INSERT INTO kv_store (name, value) VALUES (?, ?);`)
	want := `INSERT INTO kv_store (name, value) VALUES ($1, $2);`
	if got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
	lite := &Store{driver: "sqlite"}
	if q := `SELECT ?;`; lite.rebind(q) != q {
		t.Errorf("sqlite rebind changed query")
	}
}

func TestSQLiteDSN(t *testing.T) {
	if got := sqliteDSN("file:mem?mode=memory"); got != "file:mem?mode=memory" {
		t.Errorf("file: dsn rewritten to %q", got)
	}
	got := sqliteDSN("/tmp/x.db")
	if got != "file:///tmp/x.db?_pragma=busy_timeout%285000%29&mode=rwc" {
		t.Errorf("dsn = %q", got)
	}
}

func TestGoalListRoundTrip(t *testing.T) {
	g := NewGoals(openTestStore(t))

	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty", []Entry{}},
		{"mixed", []Entry{
			{Text: "Write report", Completed: true},
			{Text: "", Completed: false},
			{Text: `quote " and unicode ✓`, Completed: false},
		}},
		{"completed blank kept verbatim", []Entry{{Text: "", Completed: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.SaveList(tt.entries); err != nil {
				t.Fatalf("SaveList: %v", err)
			}
			got, err := g.LoadList()
			if err != nil {
				t.Fatalf("LoadList: %v", err)
			}
			if !reflect.DeepEqual(got, tt.entries) {
				t.Errorf("got %+v, want %+v", got, tt.entries)
			}
		})
	}
}

func TestLoadListFallbacks(t *testing.T) {
	s := openTestStore(t)
	g := NewGoals(s)

	got, err := g.LoadList()
	if err != nil || len(got) != 0 {
		t.Fatalf("missing key: got %v, %v", got, err)
	}

	for _, bad := range []string{"{not json", `{"text":"x"}`, "null", "   "} {
		if err := s.Set(GoalsKey, bad); err != nil {
			t.Fatal(err)
		}
		got, err := g.LoadList()
		if err != nil {
			t.Errorf("%q: unexpected error %v", bad, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("%q: got %v, want empty list", bad, got)
		}
	}
}

func TestTimerStart(t *testing.T) {
	s := openTestStore(t)
	g := NewGoals(s)

	if _, ok, err := g.TimerStart(0); ok || err != nil {
		t.Fatalf("absent timer: ok %v err %v", ok, err)
	}

	start := time.UnixMilli(1_700_000_000_123)
	if err := g.SetTimerStart(2, start); err != nil {
		t.Fatal(err)
	}
	raw, _, _ := s.Get("goal_timer_2")
	if raw != "1700000000123" {
		t.Errorf("raw timer value = %q", raw)
	}
	got, ok, err := g.TimerStart(2)
	if err != nil || !ok || !got.Equal(start) {
		t.Fatalf("TimerStart = %v, %v, %v", got, ok, err)
	}

	if err := g.ClearTimerStart(2); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := g.TimerStart(2); ok {
		t.Fatal("timer still present after clear")
	}

	if err := s.Set(TimerKey(1), "yesterday"); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := g.TimerStart(1); ok || err != nil {
		t.Fatalf("malformed timer: ok %v err %v", ok, err)
	}
}
