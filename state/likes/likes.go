// Package likes owns the liked-product set on the client side. Toggles
// apply locally first and are confirmed against the API afterwards; a
// failed confirmation rolls the local change back.
package likes

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"zipper/core/product"
)

// State tracks hydration progress. Toggling is only meaningful once the
// manager is Ready.
type State int

const (
	Uninitialized State = iota
	Hydrating
	Ready
)

// Remote is the source of truth the local set reconciles against. The
// API client implements it.
type Remote interface {
	Liked(ctx context.Context) ([]product.Product, error)
	Like(ctx context.Context, productID string) error
	Unlike(ctx context.Context, productID string) error
}

// Notifier receives the user-facing feedback when a confirmation fails.
type Notifier interface {
	Error(message string)
}

const defaultTimeout = 10 * time.Second

type Manager struct {
	remote   Remote
	notifier Notifier
	log      logrus.FieldLogger

	// timeout bounds each like/unlike confirmation; a hung call counts
	// as a failure and rolls back.
	timeout time.Duration

	mu    sync.Mutex
	state State
	liked map[string]bool

	inflight sync.WaitGroup
}

func NewManager(remote Remote, notifier Notifier, log logrus.FieldLogger, timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Manager{
		remote:   remote,
		notifier: notifier,
		log:      log,
		timeout:  timeout,
		liked:    make(map[string]bool),
	}
}

// Hydrate loads the liked set from the remote source of truth, once.
// On failure the manager still becomes Ready with an empty set; the
// storefront degrades instead of blocking.
func (m *Manager) Hydrate(ctx context.Context) {
	m.mu.Lock()
	if m.state != Uninitialized {
		m.mu.Unlock()
		return
	}
	m.state = Hydrating
	m.mu.Unlock()

	products, err := m.remote.Liked(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.log.WithField("message", err).Error("likes: hydration failed")
	} else {
		for _, p := range products {
			m.liked[p.ID] = true
		}
	}
	m.state = Ready
}

// Toggle flips the liked state of productID locally and confirms the
// change remotely. Each call captures the pre-toggle state it saw, so a
// rollback restores exactly that state even if other toggles ran in the
// meantime; concurrent toggles on the same id settle last-writer-wins.
func (m *Manager) Toggle(productID string) {
	m.mu.Lock()
	if m.state != Ready {
		m.mu.Unlock()
		m.log.WithField("productId", productID).Warn("likes: toggle before ready")
		return
	}

	wasLiked := m.liked[productID]
	if wasLiked {
		delete(m.liked, productID)
	} else {
		m.liked[productID] = true
	}
	m.mu.Unlock()

	m.inflight.Add(1)
	go m.confirm(productID, wasLiked)
}

func (m *Manager) confirm(productID string, wasLiked bool) {
	defer m.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	var err error
	if wasLiked {
		err = m.remote.Unlike(ctx, productID)
	} else {
		err = m.remote.Like(ctx, productID)
	}
	if err == nil {
		return
	}

	m.log.WithFields(logrus.Fields{
		"productId": productID,
		"message":   err,
	}).Error("likes: confirmation failed, rolling back")

	// Restore the state captured before this toggle, not whatever the
	// set holds now.
	m.mu.Lock()
	if wasLiked {
		m.liked[productID] = true
	} else {
		delete(m.liked, productID)
	}
	m.mu.Unlock()

	if m.notifier != nil {
		m.notifier.Error("Could not update liked items. Please try again.")
	}
}

// IsLiked reports the current local liked state. It never blocks on the
// remote.
func (m *Manager) IsLiked(productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liked[productID]
}

// LikedIDs returns the ids currently liked.
func (m *Manager) LikedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.liked))
	for id := range m.liked {
		ids = append(ids, id)
	}
	return ids
}

// State returns the manager's hydration state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Wait blocks until every in-flight confirmation has settled.
func (m *Manager) Wait() {
	m.inflight.Wait()
}
