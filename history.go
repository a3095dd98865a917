package shophub

import (
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// MaxHistoryEntries bounds the search history.
const MaxHistoryEntries = 5

const historyStorageKey = "shophub:search-history"

// History is the bounded, most-recent-first search history. Adding a term
// that already exists (compared case-insensitively) moves it to the front
// with the new casing instead of duplicating it.
//
// History persists through a Storage. When a write fails the history keeps
// working in memory and retries persistence on the next mutation.
type History struct {
	mu      sync.Mutex
	storage Storage
	logger  *zap.Logger
	entries []string
}

// NewHistory loads any persisted history from storage. A nil storage keeps
// the history purely in memory; a corrupt or unreadable snapshot starts
// empty rather than failing.
func NewHistory(storage Storage, logger *zap.Logger) *History {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &History{storage: storage, logger: logger}
	h.load()
	return h
}

// Add records a search term at the front of the history. Blank terms are
// ignored.
func (h *History) Add(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	kept := make([]string, 0, len(h.entries)+1)
	kept = append(kept, term)
	for _, e := range h.entries {
		if strings.EqualFold(e, term) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > MaxHistoryEntries {
		kept = kept[:MaxHistoryEntries]
	}
	h.entries = kept
	h.save()
}

// Entries returns the history, most recent first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Remove deletes a single term by exact match. Only Add dedupes
// case-insensitively; removal never touches entries with other casing.
func (h *History) Remove(term string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := h.entries[:0]
	for _, e := range h.entries {
		if e != term {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(h.entries) {
		return
	}
	h.entries = kept
	h.save()
}

// Clear empties the history and removes the persisted snapshot.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	if h.storage == nil {
		return
	}
	if err := h.storage.Remove(historyStorageKey); err != nil {
		h.logger.Warn("failed to clear persisted search history", zap.Error(err))
	}
}

func (h *History) load() {
	if h.storage == nil {
		return
	}
	data, ok, err := h.storage.Load(historyStorageKey)
	if err != nil {
		h.logger.Warn("failed to load search history", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		h.logger.Warn("discarding corrupt search history", zap.Error(err))
		return
	}
	if len(entries) > MaxHistoryEntries {
		entries = entries[:MaxHistoryEntries]
	}
	h.entries = entries
}

// save persists under the lock. Failures are logged and absorbed so history
// keeps working in memory.
func (h *History) save() {
	if h.storage == nil {
		return
	}
	data, err := json.Marshal(h.entries)
	if err != nil {
		h.logger.Warn("failed to encode search history", zap.Error(err))
		return
	}
	if err := h.storage.Save(historyStorageKey, data); err != nil {
		h.logger.Warn("failed to persist search history", zap.Error(err))
	}
}
