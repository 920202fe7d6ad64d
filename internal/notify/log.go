package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/barberflow/salon-api/internal/models"
)

// Log is the append-only notification list, most recent first. It lives in
// memory only; notifications do not survive a restart.
type Log struct {
	mu      sync.RWMutex
	entries []models.Notification
}

func NewLog() *Log {
	return &Log{entries: []models.Notification{}}
}

// Add prepends a new unread notification for userID.
func (l *Log) Add(userID, message string, typ models.NotificationType) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := models.Notification{
		ID:        "n-" + uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Type:      typ,
		Timestamp: time.Now().UTC(),
		Read:      false,
	}
	l.entries = append([]models.Notification{n}, l.entries...)
}

// ListFor returns the notifications targeted at userID, newest first.
func (l *Log) ListFor(userID string) []models.Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Notification, 0)
	for _, n := range l.entries {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkAllRead flags every notification targeted at userID as read. Other
// users' entries are untouched.
func (l *Log) MarkAllRead(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].UserID == userID {
			l.entries[i].Read = true
		}
	}
}
