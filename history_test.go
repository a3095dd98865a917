package shophub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStorage reads fine but refuses every write.
type failingStorage struct {
	inner *MemoryStorage
}

func (s *failingStorage) Load(key string) ([]byte, bool, error) { return s.inner.Load(key) }
func (s *failingStorage) Save(string, []byte) error             { return errors.New("disk full") }
func (s *failingStorage) Remove(string) error                   { return errors.New("disk full") }

func TestHistory_AddMostRecentFirst(t *testing.T) {
	h := NewHistory(nil, nil)

	h.Add("laptop")
	h.Add("wool sweater")
	h.Add("mug")

	assert.Equal(t, []string{"mug", "wool sweater", "laptop"}, h.Entries())
}

func TestHistory_BoundedAtFive(t *testing.T) {
	h := NewHistory(nil, nil)

	for _, term := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		h.Add(term)
	}

	entries := h.Entries()
	require.Len(t, entries, MaxHistoryEntries)
	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, entries)
}

func TestHistory_DedupeCaseInsensitive(t *testing.T) {
	h := NewHistory(nil, nil)

	h.Add("laptop")
	h.Add("headphones")
	h.Add("LAPTOP")

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "LAPTOP", entries[0], "re-added term moves to front with the new casing")
	assert.Equal(t, "headphones", entries[1])
}

func TestHistory_IgnoresBlankTerms(t *testing.T) {
	h := NewHistory(nil, nil)

	h.Add("")
	h.Add("   ")
	h.Add("  mug  ")

	assert.Equal(t, []string{"mug"}, h.Entries(), "terms are trimmed before recording")
}

func TestHistory_Remove(t *testing.T) {
	h := NewHistory(nil, nil)
	h.Add("laptop")
	h.Add("mug")

	h.Remove("laptop")
	assert.Equal(t, []string{"mug"}, h.Entries())

	h.Remove("never-added")
	assert.Equal(t, []string{"mug"}, h.Entries())
}

func TestHistory_RemoveIsExactMatch(t *testing.T) {
	h := NewHistory(nil, nil)
	h.Add("laptop")

	// Only Add dedupes case-insensitively; Remove must not.
	h.Remove("LAPTOP")
	assert.Equal(t, []string{"laptop"}, h.Entries())

	h.Remove("laptop")
	assert.Empty(t, h.Entries())
}

func TestHistory_PersistenceRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	h := NewHistory(storage, nil)
	h.Add("laptop")
	h.Add("mug")

	reloaded := NewHistory(storage, nil)
	assert.Equal(t, []string{"mug", "laptop"}, reloaded.Entries())
}

func TestHistory_CorruptSnapshotStartsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(historyStorageKey, []byte("{not json")))

	h := NewHistory(storage, nil)
	assert.Empty(t, h.Entries())

	// The history still works and repairs the snapshot on the next write.
	h.Add("mug")
	reloaded := NewHistory(storage, nil)
	assert.Equal(t, []string{"mug"}, reloaded.Entries())
}

func TestHistory_OversizedSnapshotTruncated(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(historyStorageKey, []byte(`["a","b","c","d","e","f","g"]`)))

	h := NewHistory(storage, nil)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, h.Entries())
}

func TestHistory_DegradesWhenStorageFails(t *testing.T) {
	h := NewHistory(&failingStorage{inner: NewMemoryStorage()}, nil)

	h.Add("laptop")
	h.Add("mug")

	assert.Equal(t, []string{"mug", "laptop"}, h.Entries(), "failed writes must not lose in-memory state")
}

func TestHistory_Clear(t *testing.T) {
	storage := NewMemoryStorage()
	h := NewHistory(storage, nil)
	h.Add("laptop")

	h.Clear()

	assert.Empty(t, h.Entries())
	_, ok, err := storage.Load(historyStorageKey)
	require.NoError(t, err)
	assert.False(t, ok, "persisted snapshot should be removed")
}

func TestHistory_EntriesReturnsCopy(t *testing.T) {
	h := NewHistory(nil, nil)
	h.Add("laptop")

	entries := h.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"laptop"}, h.Entries())
}
