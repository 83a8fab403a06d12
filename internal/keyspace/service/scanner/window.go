package scanner

import (
	"sync"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

// window holds the most recent foreground items, oldest first.
type window struct {
	mu    sync.RWMutex
	limit int
	items []model.PrivateKeyItem
}

func newWindow(limit int) *window {
	return &window{limit: limit}
}

func (w *window) push(items []model.PrivateKeyItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = append(w.items, items...)
	if extra := len(w.items) - w.limit; extra > 0 {
		w.items = append([]model.PrivateKeyItem(nil), w.items[extra:]...)
	}
}

func (w *window) reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
}

func (w *window) snapshot() []model.PrivateKeyItem {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]model.PrivateKeyItem, len(w.items))
	copy(out, w.items)
	return out
}
