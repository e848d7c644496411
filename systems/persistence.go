package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const progressKey = "progress"

// SavedProgress is the state kept between runs.
type SavedProgress struct {
	LevelIID string `json:"levelIid"`
}

// ProgressStore persists SavedProgress. Load returns nil when nothing has
// been saved yet.
type ProgressStore interface {
	Load() (*SavedProgress, error)
	Save(p SavedProgress) error
}

// GDataStore keeps progress in the per-user data directory.
type GDataStore struct {
	manager *gdata.Manager
}

func NewGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &GDataStore{manager: m}, nil
}

func (s *GDataStore) Load() (*SavedProgress, error) {
	data, err := s.manager.LoadItem(progressKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (s *GDataStore) Save(p SavedProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.manager.SaveItem(progressKey, data)
}

// MemoryStore is a ProgressStore that lives only as long as the process.
type MemoryStore struct {
	progress *SavedProgress
}

func (s *MemoryStore) Load() (*SavedProgress, error) {
	if s.progress == nil {
		return nil, nil
	}
	p := *s.progress
	return &p, nil
}

func (s *MemoryStore) Save(p SavedProgress) error {
	s.progress = &p
	return nil
}

// NewProgressHandler returns a ResetLevel subscriber that remembers the
// level the player switched into.
func NewProgressHandler(store ProgressStore) func(w donburi.World, ev ResetLevelEvent) {
	return func(w donburi.World, ev ResetLevelEvent) {
		if store == nil || ev.Reason != ResetSwitch {
			return
		}
		if err := store.Save(SavedProgress{LevelIID: ev.LevelIID}); err != nil {
			log.Printf("Warning: Could not save game progress: %v", err)
		}
	}
}
