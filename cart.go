package shophub

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const cartStorageKey = "shophub:cart"

// CartLine is one product in the cart with its quantity.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart aggregates products by ID. Lines keep their insertion order; adding
// an existing product bumps its quantity in place.
//
// Like History, the cart persists through a Storage and degrades to
// in-memory operation when writes fail.
type Cart struct {
	mu      sync.Mutex
	storage Storage
	logger  *zap.Logger
	lines   []CartLine
}

// NewCart loads any persisted cart from storage. A nil storage keeps the
// cart purely in memory.
func NewCart(storage Storage, logger *zap.Logger) *Cart {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cart{storage: storage, logger: logger}
	c.load()
	return c
}

// Add puts one unit of the product in the cart. If the product is already
// there its quantity goes up by one.
func (c *Cart) Add(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			c.save()
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
	c.save()
}

// Remove drops the product's line entirely, whatever its quantity.
// Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.save()
			return
		}
	}
}

// SetQuantity sets the product's quantity directly. A quantity of zero or
// less removes the line; an absent product is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			c.save()
			return
		}
	}
}

// Lines returns a snapshot of the cart in insertion order.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i := range c.lines {
		n += c.lines[i].Quantity
	}
	return n
}

// Subtotal returns the cart total: price times quantity, summed.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for i := range c.lines {
		total += c.lines[i].Product.Price * float64(c.lines[i].Quantity)
	}
	return total
}

// Clear empties the cart and removes the persisted snapshot.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	if c.storage == nil {
		return
	}
	if err := c.storage.Remove(cartStorageKey); err != nil {
		c.logger.Warn("failed to clear persisted cart", zap.Error(err))
	}
}

func (c *Cart) load() {
	if c.storage == nil {
		return
	}
	data, ok, err := c.storage.Load(cartStorageKey)
	if err != nil {
		c.logger.Warn("failed to load cart", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	var lines []CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		c.logger.Warn("discarding corrupt cart", zap.Error(err))
		return
	}
	// Drop lines a buggy writer could have left behind.
	kept := lines[:0]
	for _, l := range lines {
		if l.Product.ID != "" && l.Quantity > 0 {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

func (c *Cart) save() {
	if c.storage == nil {
		return
	}
	data, err := json.Marshal(c.lines)
	if err != nil {
		c.logger.Warn("failed to encode cart", zap.Error(err))
		return
	}
	if err := c.storage.Save(cartStorageKey, data); err != nil {
		c.logger.Warn("failed to persist cart", zap.Error(err))
	}
}
