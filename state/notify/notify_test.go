package notify_test

import (
	"testing"
	"time"

	"zipper/state/notify"
)

func waitGone(t *testing.T, q *notify.Queue, id int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !contains(q, id) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("notification %d never expired", id)
}

func contains(q *notify.Queue, id int64) bool {
	for _, n := range q.Active() {
		if n.ID == id {
			return true
		}
	}
	return false
}

func TestExpiresAfterTTL(t *testing.T) {
	q := notify.NewQueue(30 * time.Millisecond)

	id := q.Add("Item added to cart!", notify.Success)
	if !contains(q, id) {
		t.Fatal("notification must be active immediately after Add")
	}

	waitGone(t, q, id)
}

func TestDismissBeforeTTL(t *testing.T) {
	q := notify.NewQueue(50 * time.Millisecond)

	id := q.Add("bye", notify.Success)
	q.Dismiss(id)
	if contains(q, id) {
		t.Fatal("dismiss must remove the notification early")
	}

	// The expiry timer fires later against the dismissed id; nothing
	// should break and the queue stays empty.
	time.Sleep(80 * time.Millisecond)
	if len(q.Active()) != 0 {
		t.Fatalf("expected empty queue, got %+v", q.Active())
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	q := notify.NewQueue(time.Minute)

	id := q.Add("once", notify.Error)
	q.Dismiss(id)
	q.Dismiss(id)
	if len(q.Active()) != 0 {
		t.Fatalf("expected empty queue, got %+v", q.Active())
	}
}

func TestInsertionOrderAndMonotonicIDs(t *testing.T) {
	q := notify.NewQueue(time.Minute)

	first := q.Add("first", notify.Success)
	second := q.Add("second", notify.Error)

	if second <= first {
		t.Fatalf("ids must increase: %d then %d", first, second)
	}

	active := q.Active()
	if len(active) != 2 || active[0].Message != "first" || active[1].Message != "second" {
		t.Fatalf("queue must keep insertion order, got %+v", active)
	}
	if active[1].Kind != notify.Error {
		t.Fatalf("kind not kept: %+v", active[1])
	}
}
