package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// RunRecord is the best run stored on disk
type RunRecord struct {
	BestKills      int `json:"bestKills"`
	BestExperience int `json:"bestExperience"`
	Runs           int `json:"runs"`
}

const runRecordKey = "record"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for run record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "quiverfall",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRunRecord loads the run record from disk. A missing record is not an
// error; the zero record is returned instead.
func LoadRunRecord() (*RunRecord, error) {
	if !gdataInitialized || gdataManager == nil {
		return &RunRecord{}, nil
	}

	data, err := gdataManager.LoadItem(runRecordKey)
	if err != nil {
		log.Printf("Warning: Could not load run record: %v", err)
		return &RunRecord{}, nil
	}
	if data == nil {
		// No runs finished yet
		return &RunRecord{}, nil
	}

	var record RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse run record: %v", err)
		return &RunRecord{}, err
	}

	return &record, nil
}

// SaveRunRecord saves the run record to disk
func SaveRunRecord(r *RunRecord) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize run record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(runRecordKey, data); err != nil {
		log.Printf("Warning: Could not save run record: %v", err)
		return err
	}
	return nil
}

// Merge folds a finished run into the record. It reports whether the run
// set a new best.
func (r *RunRecord) Merge(kills, experience int) bool {
	r.Runs++
	best := false
	if kills > r.BestKills {
		r.BestKills = kills
		best = true
	}
	if experience > r.BestExperience {
		r.BestExperience = experience
		best = true
	}
	return best
}
