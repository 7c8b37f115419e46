// ABOUTME: Persistence bridge between the state tree and the durable slot
// ABOUTME: Serializes {briefs, activeBriefId} to JSON with a tolerant, backfilling loader
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/lens/models"
)

// SlotKey names the single durable entry holding workbench state.
const SlotKey = "lens-app-state"

var (
	// ErrSlotMissing means the slot has no persisted snapshot yet.
	ErrSlotMissing = errors.New("state slot: no persisted snapshot")

	// ErrSlotCorrupt means a snapshot was present but failed to decode.
	ErrSlotCorrupt = errors.New("state slot: snapshot failed to decode")
)

// Slot is the durable local key-value surface the store persists into.
// Get returns nil data (and nil error) when the key has never been written.
type Slot interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// snapshot is the wire shape of the persisted slice of state. Only the brief
// list and the active pointer survive restarts; the catalog and search state
// reset to seeds on every load.
type snapshot struct {
	Briefs        []models.Brief `json:"briefs"`
	ActiveBriefID *string        `json:"activeBriefId"`
}

// EncodeSnapshot serializes the persistable slice of state.
func EncodeSnapshot(state AppState) ([]byte, error) {
	snap := snapshot{Briefs: state.Briefs}
	if state.ActiveBriefID != "" {
		id := state.ActiveBriefID
		snap.ActiveBriefID = &id
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode state snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted snapshot. Brief records written by older
// versions may lack the reaction, collaborator, and archived fields; those
// are backfilled with safe defaults rather than rejected. A snapshot with no
// brief list at all falls back to the seed briefs. There is no schema
// version, migrations work by presence-checking fields.
func DecodeSnapshot(data []byte) ([]models.Brief, string, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrSlotCorrupt, err)
	}

	briefs := snap.Briefs
	if briefs == nil {
		briefs = models.SeedBriefs()
	}
	for i := range briefs {
		if briefs[i].LikedVideoIDs == nil {
			briefs[i].LikedVideoIDs = []string{}
		}
		if briefs[i].DislikedVideoIDs == nil {
			briefs[i].DislikedVideoIDs = []string{}
		}
		if briefs[i].Collaborators == nil {
			briefs[i].Collaborators = []models.Collaborator{}
		}
	}

	activeID := ""
	if snap.ActiveBriefID != nil {
		activeID = *snap.ActiveBriefID
	}
	return briefs, activeID, nil
}

// LoadSlot reads and decodes the snapshot from the durable slot.
func LoadSlot(slot Slot) ([]models.Brief, string, error) {
	data, err := slot.Get(SlotKey)
	if err != nil {
		return nil, "", fmt.Errorf("read state slot: %w", err)
	}
	if data == nil {
		return nil, "", ErrSlotMissing
	}
	return DecodeSnapshot(data)
}

// SaveSlot encodes the persistable slice of state and writes it to the slot.
func SaveSlot(slot Slot, state AppState) error {
	data, err := EncodeSnapshot(state)
	if err != nil {
		return err
	}
	if err := slot.Set(SlotKey, data); err != nil {
		return fmt.Errorf("write state slot: %w", err)
	}
	return nil
}
