package state

import (
	"context"
	"encoding/json"
	"log"
)

// Versioned keys, one per persisted collection. The version suffix lets a
// future schema change use a fresh key instead of silently misreading old
// payloads.
const (
	KeyBookings = "barberflow:bookings:v1"
	KeyBarbers  = "barberflow:staff:v1"
	KeyServices = "barberflow:services:v1"
	KeyGallery  = "barberflow:gallery:v1"
	KeyAudit    = "barberflow:audit:v1"
)

// Store is the durable key-value adapter. Values are JSON snapshots of whole
// collections; Load returns ok=false when the key has never been written.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

// LoadJSON reads a snapshot into out. A missing key or an unreadable payload
// leaves out untouched and returns false, so callers fall back to their seed
// data. Payloads that do decode are trusted as-is.
func LoadJSON(ctx context.Context, s Store, key string, out any) bool {
	raw, ok, err := s.Load(ctx, key)
	if err != nil {
		log.Println("state load error:", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Println("state decode error:", key, err)
		return false
	}
	return true
}

// SaveJSON mirrors an in-memory collection to the store. Persistence is
// best-effort: failures are logged and the in-memory state stays
// authoritative.
func SaveJSON(ctx context.Context, s Store, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Println("state encode error:", key, err)
		return
	}
	if err := s.Save(ctx, key, raw); err != nil {
		log.Println("state save error:", key, err)
	}
}
