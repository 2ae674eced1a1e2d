package cart_test

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"zipper/state/cart"
	"zipper/state/storage"
)

type memStorage struct {
	loadErr error
	data    map[string]any
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]any)}
}

func (m *memStorage) Save(key string, v any) error {
	lines := v.([]cart.Line)
	m.data[key] = append([]cart.Line(nil), lines...)
	return nil
}

func (m *memStorage) Load(key string, v any) (bool, error) {
	if m.loadErr != nil {
		return false, m.loadErr
	}
	stored, ok := m.data[key]
	if !ok {
		return false, nil
	}
	*(v.(*[]cart.Line)) = append([]cart.Line(nil), stored.([]cart.Line)...)
	return true, nil
}

type countingNotifier struct {
	successes int
}

func (n *countingNotifier) Success(string) { n.successes++ }

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAddMergesSameProduct(t *testing.T) {
	m := cart.NewManager(newMemStorage(), nil, testLogger())

	item := cart.Item{ProductID: "7", Name: "Book", Price: 10}
	m.Add(item, 1)
	m.Add(item, 1)
	m.Add(item, 3)

	lines := m.Items()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	n := &countingNotifier{}
	m := cart.NewManager(newMemStorage(), n, testLogger())

	m.Add(cart.Item{ProductID: "1"}, 0)
	m.Add(cart.Item{ProductID: "1"}, -2)

	if len(m.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", m.Items())
	}
	if n.successes != 0 {
		t.Fatalf("no notification should fire for a no-op add, got %d", n.successes)
	}
}

func TestAddNotifies(t *testing.T) {
	n := &countingNotifier{}
	m := cart.NewManager(newMemStorage(), n, testLogger())

	m.Add(cart.Item{ProductID: "1"}, 1)
	if n.successes != 1 {
		t.Fatalf("expected one notification, got %d", n.successes)
	}
}

func TestSetQuantityRemovesAtZeroOrBelow(t *testing.T) {
	for _, qty := range []int{0, -5} {
		m := cart.NewManager(newMemStorage(), nil, testLogger())
		m.Add(cart.Item{ProductID: "7", Price: 10}, 2)

		m.SetQuantity("7", qty)
		if len(m.Items()) != 0 {
			t.Fatalf("SetQuantity(%d) should remove the line, got %+v", qty, m.Items())
		}
	}
}

func TestSetQuantityIsExact(t *testing.T) {
	m := cart.NewManager(newMemStorage(), nil, testLogger())
	m.Add(cart.Item{ProductID: "7", Price: 10}, 2)

	m.SetQuantity("7", 5)
	if got := m.Items()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}

	// Unknown id is a no-op.
	m.SetQuantity("ghost", 3)
	if len(m.Items()) != 1 {
		t.Fatalf("unexpected cart: %+v", m.Items())
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	m := cart.NewManager(newMemStorage(), nil, testLogger())
	m.Add(cart.Item{ProductID: "1", Price: 5}, 1)

	before := m.Items()
	m.Remove("ghost")
	if diff := cmp.Diff(before, m.Items()); diff != "" {
		t.Fatalf("cart changed by removing an absent id (-want +got):\n%s", diff)
	}
}

func TestScenario(t *testing.T) {
	m := cart.NewManager(newMemStorage(), nil, testLogger())

	m.Add(cart.Item{ProductID: "7", Price: 10}, 2)
	if m.ItemCount() != 2 || m.Subtotal() != 20 {
		t.Fatalf("after add: count=%d subtotal=%v", m.ItemCount(), m.Subtotal())
	}

	m.SetQuantity("7", 5)
	if m.Subtotal() != 50 {
		t.Fatalf("after set: subtotal=%v", m.Subtotal())
	}

	m.Remove("7")
	if len(m.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", m.Items())
	}
}

func TestClear(t *testing.T) {
	m := cart.NewManager(newMemStorage(), nil, testLogger())
	m.Add(cart.Item{ProductID: "1", Price: 5}, 1)
	m.Add(cart.Item{ProductID: "2", Price: 3}, 2)

	m.Clear()
	if m.ItemCount() != 0 || m.Subtotal() != 0 {
		t.Fatalf("expected empty cart, got count=%d subtotal=%v", m.ItemCount(), m.Subtotal())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("opening state store: %v", err)
	}
	defer store.Close()

	m := cart.NewManager(store, nil, testLogger())
	m.Add(cart.Item{ProductID: "1", Name: "Headphones", Price: 299.99, Image: "img-1"}, 2)
	m.Add(cart.Item{ProductID: "8", Name: "Coffee Set", Price: 58}, 1)

	rehydrated := cart.NewManager(store, nil, testLogger())
	if diff := cmp.Diff(m.Items(), rehydrated.Items()); diff != "" {
		t.Fatalf("snapshot did not round-trip (-want +got):\n%s", diff)
	}
}

func TestMalformedSnapshotYieldsEmptyCart(t *testing.T) {
	s := newMemStorage()
	s.loadErr = errors.New("unexpected end of JSON input")

	m := cart.NewManager(s, nil, testLogger())
	if len(m.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", m.Items())
	}

	// The manager stays usable after the reset.
	m.Add(cart.Item{ProductID: "1", Price: 1}, 1)
	if m.ItemCount() != 1 {
		t.Fatalf("expected item count 1, got %d", m.ItemCount())
	}
}
