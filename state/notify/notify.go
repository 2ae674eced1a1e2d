// Package notify is the transient notification queue: every message
// expires on its own timer, or earlier when dismissed by hand.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

const defaultTTL = 3 * time.Second

type Queue struct {
	ttl time.Duration

	mu     sync.Mutex
	nextID int64
	active []Notification
}

// NewQueue builds a queue whose notifications live for ttl; a
// non-positive ttl falls back to three seconds.
func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Queue{ttl: ttl}
}

// Add enqueues a notification and schedules its expiry. The returned id
// can be used to dismiss it early.
func (q *Queue) Add(message string, kind Kind) int64 {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.active = append(q.active, Notification{
		ID:        id,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	})
	q.mu.Unlock()

	// The timer may fire after the id was dismissed by hand; Dismiss is
	// idempotent so that is harmless.
	time.AfterFunc(q.ttl, func() {
		q.Dismiss(id)
	})

	return id
}

// Success enqueues a success notification.
func (q *Queue) Success(message string) {
	q.Add(message, Success)
}

// Error enqueues an error notification.
func (q *Queue) Error(message string) {
	q.Add(message, Error)
}

// Dismiss removes the notification with the given id. Dismissing an id
// that already expired is a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.active {
		if n.ID == id {
			q.active = append(q.active[:i], q.active[i+1:]...)
			return
		}
	}
}

// Active returns the live notifications in insertion order.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.active))
	copy(out, q.active)
	return out
}
