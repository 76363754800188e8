package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/ballglide/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedRecords represents the run records stored on disk
type SavedRecords struct {
	BestRampExitSpeed    float64 `json:"bestRampExitSpeed"`
	LongestFlightSeconds float64 `json:"longestFlightSeconds"`
	RampRuns             int     `json:"rampRuns"`
}

const recordsKey = "records"

// recordStore is the subset of the gdata manager the records need.
type recordStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store recordStore

// InitPersistence initializes the gdata manager for records storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ballglide",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadRecords loads run records from disk. It returns nil when nothing is saved.
func LoadRecords() (*SavedRecords, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(recordsKey)
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records SavedRecords
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return nil, err
	}
	return &records, nil
}

// SaveRecords saves run records to disk
func SaveRecords(r *SavedRecords) error {
	if store == nil || r == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := store.SaveItem(recordsKey, data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	return nil
}

// ApplySavedRecords seeds the Records component from disk.
func ApplySavedRecords(e *ecs.ECS, saved *SavedRecords) {
	if saved == nil {
		return
	}
	entry, ok := components.Records.First(e.World)
	if !ok {
		return
	}
	records := components.Records.Get(entry)
	records.BestRampExitSpeed = saved.BestRampExitSpeed
	records.LongestFlightSeconds = saved.LongestFlightSeconds
	records.RampRuns = saved.RampRuns
}
