package gallery

import (
	"context"
	"sync"

	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/state"
)

var defaultImages = []string{
	"https://images.unsplash.com/photo-1503951914875-452162b0f3f1?auto=format&fit=crop&q=80&w=1000",
	"https://images.unsplash.com/photo-1621605815971-fbc98d665033?auto=format&fit=crop&q=80&w=1000",
	"https://images.unsplash.com/photo-1599351431202-1e0f0137899a?auto=format&fit=crop&q=80&w=1000",
}

// Manager owns the ordered gallery image list. Mutations are mirrored to the
// durable store.
type Manager struct {
	mu    sync.RWMutex
	store state.Store
	urls  []string
}

func NewManager(ctx context.Context, st state.Store) *Manager {
	m := &Manager{store: st}

	if !state.LoadJSON(ctx, st, state.KeyGallery, &m.urls) {
		m.urls = append([]string{}, defaultImages...)
	}

	return m
}

func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.urls))
	copy(out, m.urls)
	return out
}

func (m *Manager) Add(ctx context.Context, url string) error {
	if url == "" {
		return httperr.ErrBusiness("invalid_image_url")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.urls = append(m.urls, url)
	state.SaveJSON(ctx, m.store, state.KeyGallery, m.urls)
	return nil
}

func (m *Manager) Remove(ctx context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.urls) {
		return httperr.ErrBusiness("invalid_image_index")
	}

	m.urls = append(m.urls[:index], m.urls[index+1:]...)
	state.SaveJSON(ctx, m.store, state.KeyGallery, m.urls)
	return nil
}
