// Package purchases owns the append-only purchase history, newest
// first, persisted as a whole snapshot after every purchase.
package purchases

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"zipper/state/cart"
	"zipper/state/storage"
)

// Record is one completed checkout. Records never change once created;
// there is no return or cancel flow.
type Record struct {
	Items     []cart.Line `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Storage is the snapshot store the manager persists through.
type Storage interface {
	Save(key string, v any) error
	Load(key string, v any) (bool, error)
}

type Manager struct {
	store Storage
	log   logrus.FieldLogger

	mu      sync.Mutex
	records []Record
}

// NewManager hydrates the purchase log from the stored snapshot,
// resetting to empty on missing or malformed data.
func NewManager(store Storage, log logrus.FieldLogger) *Manager {
	m := &Manager{
		store: store,
		log:   log,
	}

	var records []Record
	ok, err := store.Load(storage.PurchasesKey, &records)
	if err != nil {
		log.WithField("message", err).Warn("purchases: resetting stored snapshot")
	} else if ok {
		m.records = records
	}

	return m
}

// Add stamps and prepends a new purchase record, so index zero is
// always the most recent purchase.
func (m *Manager) Add(items []cart.Line, total float64) Record {
	rec := Record{
		Items:     append([]cart.Line(nil), items...),
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append([]Record{rec}, m.records...)

	if err := m.store.Save(storage.PurchasesKey, m.records); err != nil {
		m.log.WithField("message", err).Error("purchases: persisting snapshot")
	}

	return rec
}

// All returns the purchase log, most recent first. Item slices are
// copied so callers cannot reach into the stored records.
func (m *Manager) All() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.records))
	for i, rec := range m.records {
		rec.Items = append([]cart.Line(nil), rec.Items...)
		out[i] = rec
	}
	return out
}
