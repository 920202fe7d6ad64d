package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/barberflow/salon-api/internal/models"
	"github.com/barberflow/salon-api/internal/state"
)

// Logger appends audit entries to the durable store under the audit key.
type Logger struct {
	mu      sync.Mutex
	store   state.Store
	entries []models.AuditEntry
}

func New(ctx context.Context, st state.Store) *Logger {
	l := &Logger{store: st}
	if !state.LoadJSON(ctx, st, state.KeyAudit, &l.entries) {
		l.entries = []models.AuditEntry{}
	}
	return l
}

func (l *Logger) Log(ctx context.Context, userID, action, entity, entityID string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditEntry{
		ID:        "a-" + uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now().UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	state.SaveJSON(ctx, l.store, state.KeyAudit, l.entries)
	return nil
}

// List returns entries newest first, capped at limit (0 means all).
func (l *Logger) List(limit int) []models.AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.AuditEntry, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		out = append(out, l.entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
