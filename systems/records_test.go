package systems

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/automoto/ballglide/components"
	cfg "github.com/automoto/ballglide/config"
	"github.com/go-gl/mathgl/mgl64"
)

type memoryStore struct {
	items map[string][]byte
	saves int
	fail  bool
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.saves++
	m.items[key] = data
	return nil
}

func useMemoryStore(t *testing.T) *memoryStore {
	t.Helper()
	m := &memoryStore{items: map[string][]byte{}}
	prev := store
	store = m
	t.Cleanup(func() { store = prev })
	return m
}

func (h *harness) records() *components.RecordsData {
	entry, _ := components.Records.First(h.ecs.World)
	return components.Records.Get(entry)
}

func TestRecordsRampExitSaved(t *testing.T) {
	m := useMemoryStore(t)
	h := newHarness(t, mgl64.Vec3{0, 20, 0})

	ramp := h.ramp()
	ramp.JustExited = true
	ramp.ExitVelocity = mgl64.Vec3{3, 4, 0}
	h.tick(nil, UpdateRecords)

	r := h.records()
	if r.RampRuns != 1 || r.BestRampExitSpeed != 5 {
		t.Errorf("records = %+v, want one run at 5 m/s", *r)
	}
	if r.Dirty || m.saves != 1 {
		t.Fatalf("dirty=%v saves=%d, want one save", r.Dirty, m.saves)
	}

	var saved SavedRecords
	if err := json.Unmarshal(m.items[recordsKey], &saved); err != nil {
		t.Fatalf("saved records: %v", err)
	}
	if saved.RampRuns != 1 || saved.BestRampExitSpeed != 5 {
		t.Errorf("saved = %+v", saved)
	}

	ramp.JustExited = true
	ramp.ExitVelocity = mgl64.Vec3{1, 0, 0}
	h.tick(nil, UpdateRecords)
	if r.RampRuns != 2 || r.BestRampExitSpeed != 5 {
		t.Errorf("slower run replaced the best: %+v", *r)
	}
}

func TestRecordsFlightSavedWhenItEnds(t *testing.T) {
	m := useMemoryStore(t)
	h := newHarness(t, mgl64.Vec3{0, 20, 0})
	loco := h.loco()
	flight := components.Flight.Get(h.player)

	loco.CurrentState = cfg.Flying
	flight.Elapsed = 2.5
	h.tick(nil, UpdateRecords)
	if h.records().LongestFlightSeconds != 2.5 {
		t.Errorf("longest flight = %v, want 2.5", h.records().LongestFlightSeconds)
	}
	if m.saves != 0 {
		t.Errorf("saved %d times mid-flight", m.saves)
	}

	loco.PreviousState = cfg.Flying
	loco.CurrentState = cfg.Airborne
	loco.StateTimer = 0
	h.tick(nil, UpdateRecords)
	if m.saves != 1 {
		t.Errorf("saves = %d after landing the flight, want 1", m.saves)
	}

	loco.StateTimer = 1
	h.tick(nil, UpdateRecords)
	if m.saves != 1 {
		t.Errorf("saves = %d with nothing new, want 1", m.saves)
	}
}

func TestRecordsSaveWaitsForRampRelease(t *testing.T) {
	m := useMemoryStore(t)
	h := newHarness(t, mgl64.Vec3{0, 20, 0})
	r := h.records()
	r.Dirty = true
	h.ramp().Active = true

	h.tick(nil, UpdateRecords)
	if m.saves != 0 || !r.Dirty {
		t.Fatalf("saved while on the ramp")
	}
	h.ramp().Active = false
	h.tick(nil, UpdateRecords)
	if m.saves != 1 || r.Dirty {
		t.Errorf("saves=%d dirty=%v after release", m.saves, r.Dirty)
	}
}

func TestLoadRecords(t *testing.T) {
	t.Run("no store", func(t *testing.T) {
		prev := store
		store = nil
		t.Cleanup(func() { store = prev })
		saved, err := LoadRecords()
		if saved != nil || err != nil {
			t.Errorf("LoadRecords() = %v, %v", saved, err)
		}
	})

	t.Run("round trip into the world", func(t *testing.T) {
		useMemoryStore(t)
		want := &SavedRecords{BestRampExitSpeed: 31.5, LongestFlightSeconds: 12, RampRuns: 7}
		if err := SaveRecords(want); err != nil {
			t.Fatal(err)
		}
		saved, err := LoadRecords()
		if err != nil || saved == nil || *saved != *want {
			t.Fatalf("LoadRecords() = %v, %v", saved, err)
		}

		h := newHarness(t, mgl64.Vec3{0, 20, 0})
		ApplySavedRecords(h.ecs, saved)
		if r := h.records(); r.RampRuns != 7 || r.BestRampExitSpeed != 31.5 || r.LongestFlightSeconds != 12 {
			t.Errorf("records = %+v", *r)
		}
	})

	t.Run("corrupt data", func(t *testing.T) {
		m := useMemoryStore(t)
		m.items[recordsKey] = []byte("{not json")
		if _, err := LoadRecords(); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("save failure", func(t *testing.T) {
		m := useMemoryStore(t)
		m.fail = true
		if err := SaveRecords(&SavedRecords{}); err == nil {
			t.Error("expected the store error")
		}
	})
}
