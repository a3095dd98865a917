package shophub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartProduct(id, name string, price float64) Product {
	return Product{
		ID:       id,
		Name:     name,
		Category: "Electronics",
		Price:    price,
		Rating:   4.5,
		InStock:  true,
	}
}

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	c := NewCart(nil, nil)
	laptop := cartProduct("p-1", "Laptop", 1200)
	mug := cartProduct("p-2", "Mug", 15)

	c.Add(laptop)
	c.Add(mug)
	c.Add(laptop)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p-1", lines[0].Product.ID, "insertion order is kept")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestCart_Remove(t *testing.T) {
	c := NewCart(nil, nil)
	c.Add(cartProduct("p-1", "Laptop", 1200))
	c.Add(cartProduct("p-2", "Mug", 15))
	c.Add(cartProduct("p-1", "Laptop", 1200))

	c.Remove("p-1")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p-2", lines[0].Product.ID, "remove drops the whole line regardless of quantity")

	c.Remove("never-added")
	assert.Len(t, c.Lines(), 1)
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("sets directly", func(t *testing.T) {
		c := NewCart(nil, nil)
		c.Add(cartProduct("p-1", "Laptop", 1200))

		c.SetQuantity("p-1", 4)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 4, lines[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c := NewCart(nil, nil)
		c.Add(cartProduct("p-1", "Laptop", 1200))

		c.SetQuantity("p-1", 0)
		assert.Empty(t, c.Lines())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		c := NewCart(nil, nil)
		c.Add(cartProduct("p-1", "Laptop", 1200))

		c.SetQuantity("p-1", -3)
		assert.Empty(t, c.Lines())
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		c := NewCart(nil, nil)
		c.Add(cartProduct("p-1", "Laptop", 1200))

		c.SetQuantity("p-9", 2)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "p-1", lines[0].Product.ID)
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestCart_CountAndSubtotal(t *testing.T) {
	c := NewCart(nil, nil)
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 0.0, c.Subtotal())

	c.Add(cartProduct("p-1", "Laptop", 1200))
	c.Add(cartProduct("p-2", "Mug", 15.5))
	c.SetQuantity("p-2", 3)

	assert.Equal(t, 4, c.Count())
	assert.InDelta(t, 1200+3*15.5, c.Subtotal(), 1e-9)
}

func TestCart_PersistenceRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	c := NewCart(storage, nil)
	c.Add(cartProduct("p-1", "Laptop", 1200))
	c.SetQuantity("p-1", 2)

	reloaded := NewCart(storage, nil)
	lines := reloaded.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p-1", lines[0].Product.ID)
	assert.Equal(t, "Laptop", lines[0].Product.Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_LoadFiltersInvalidLines(t *testing.T) {
	storage := NewMemoryStorage()
	snapshot := `[
		{"product":{"id":"p-1","name":"Laptop","price":1200},"quantity":2},
		{"product":{"id":"","name":"ghost"},"quantity":1},
		{"product":{"id":"p-2","name":"Mug","price":15},"quantity":0}
	]`
	require.NoError(t, storage.Save(cartStorageKey, []byte(snapshot)))

	c := NewCart(storage, nil)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p-1", lines[0].Product.ID)
}

func TestCart_CorruptSnapshotStartsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(cartStorageKey, []byte("not json")))

	c := NewCart(storage, nil)
	assert.Empty(t, c.Lines())
}

func TestCart_DegradesWhenStorageFails(t *testing.T) {
	c := NewCart(&failingStorage{inner: NewMemoryStorage()}, nil)

	c.Add(cartProduct("p-1", "Laptop", 1200))
	c.Add(cartProduct("p-1", "Laptop", 1200))

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Count())
}

func TestCart_Clear(t *testing.T) {
	storage := NewMemoryStorage()
	c := NewCart(storage, nil)
	c.Add(cartProduct("p-1", "Laptop", 1200))

	c.Clear()

	assert.Empty(t, c.Lines())
	_, ok, err := storage.Load(cartStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
