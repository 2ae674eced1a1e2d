// Package cart owns the shopping cart: one line per product id, in
// first-added order, persisted as a whole snapshot on every mutation.
package cart

import (
	"sync"

	"github.com/sirupsen/logrus"

	"zipper/state/storage"
)

// Line is a product plus the quantity of it sitting in the cart.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Item identifies a product being added; the quantity travels
// separately.
type Item struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
}

// Storage is the snapshot store the manager persists through.
type Storage interface {
	Save(key string, v any) error
	Load(key string, v any) (bool, error)
}

// Notifier receives the user-facing feedback for cart actions.
type Notifier interface {
	Success(message string)
}

type Manager struct {
	store    Storage
	notifier Notifier
	log      logrus.FieldLogger

	mu    sync.Mutex
	lines []Line
}

// NewManager hydrates the cart from the stored snapshot. A missing or
// malformed snapshot yields an empty cart, never an error.
func NewManager(store Storage, notifier Notifier, log logrus.FieldLogger) *Manager {
	m := &Manager{
		store:    store,
		notifier: notifier,
		log:      log,
	}

	var lines []Line
	ok, err := store.Load(storage.CartKey, &lines)
	if err != nil {
		log.WithField("message", err).Warn("cart: resetting stored snapshot")
	} else if ok {
		m.lines = lines
	}

	return m
}

// Add puts qty units of item in the cart, merging into the existing
// line when one exists. qty below one is ignored.
func (m *Manager) Add(item Item, qty int) {
	if qty <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	merged := false
	for i := range m.lines {
		if m.lines[i].ProductID == item.ProductID {
			m.lines[i].Quantity += qty
			merged = true
			break
		}
	}

	if !merged {
		m.lines = append(m.lines, Line{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  qty,
			Image:     item.Image,
		})
	}

	m.persist()

	if m.notifier != nil {
		m.notifier.Success("Item added to cart!")
	}
}

// SetQuantity replaces a line's quantity. Zero or below removes the
// line; an unknown id is a no-op.
func (m *Manager) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		m.Remove(productID)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].ProductID == productID {
			m.lines[i].Quantity = qty
			m.persist()
			return
		}
	}
}

// Remove deletes the line for productID, if present.
func (m *Manager) Remove(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].ProductID == productID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			m.persist()
			return
		}
	}
}

// Clear empties the cart.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = nil
	m.persist()
}

// Items returns the cart lines in first-added order.
func (m *Manager) Items() []Line {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out
}

// ItemCount is the sum of all line quantities, recomputed on read.
func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int
	for _, l := range m.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity across lines, recomputed
// on read.
func (m *Manager) Subtotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for _, l := range m.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func (m *Manager) persist() {
	if err := m.store.Save(storage.CartKey, m.lines); err != nil {
		m.log.WithField("message", err).Error("cart: persisting snapshot")
	}
}
