package likes_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"zipper/core/product"
	"zipper/state/likes"
)

// fakeRemote scripts per-product outcomes for like/unlike calls.
type fakeRemote struct {
	mu         sync.Mutex
	likedErr   error
	liked      []product.Product
	failIDs    map[string]bool
	blockIDs   map[string]bool
	likeCalls  []string
	unlikeCall []string
}

func newFakeRemote(likedIDs ...string) *fakeRemote {
	r := &fakeRemote{
		failIDs:  make(map[string]bool),
		blockIDs: make(map[string]bool),
	}
	for _, id := range likedIDs {
		r.liked = append(r.liked, product.Product{ID: id})
	}
	return r
}

func (r *fakeRemote) Liked(ctx context.Context) ([]product.Product, error) {
	if r.likedErr != nil {
		return nil, r.likedErr
	}
	return r.liked, nil
}

func (r *fakeRemote) call(ctx context.Context, id string, log *[]string) error {
	r.mu.Lock()
	*log = append(*log, id)
	fail := r.failIDs[id]
	block := r.blockIDs[id]
	r.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	if fail {
		return errors.New("remote call failed")
	}
	return nil
}

func (r *fakeRemote) Like(ctx context.Context, id string) error {
	return r.call(ctx, id, &r.likeCalls)
}

func (r *fakeRemote) Unlike(ctx context.Context, id string) error {
	return r.call(ctx, id, &r.unlikeCall)
}

type countingNotifier struct {
	mu     sync.Mutex
	errors int
}

func (n *countingNotifier) Error(string) {
	n.mu.Lock()
	n.errors++
	n.mu.Unlock()
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func readyManager(t *testing.T, remote likes.Remote, notifier likes.Notifier) *likes.Manager {
	t.Helper()
	m := likes.NewManager(remote, notifier, testLogger(), time.Second)
	m.Hydrate(context.Background())
	if m.State() != likes.Ready {
		t.Fatalf("manager not ready after hydration")
	}
	return m
}

func TestHydratePopulatesSet(t *testing.T) {
	m := readyManager(t, newFakeRemote("1", "3"), nil)

	if !m.IsLiked("1") || !m.IsLiked("3") || m.IsLiked("2") {
		t.Fatalf("unexpected liked set: %v", m.LikedIDs())
	}
}

func TestHydrateFailureDegradesToEmpty(t *testing.T) {
	r := newFakeRemote("1")
	r.likedErr = errors.New("boom")

	m := likes.NewManager(r, nil, testLogger(), time.Second)
	m.Hydrate(context.Background())

	if m.State() != likes.Ready {
		t.Fatalf("expected Ready after failed hydration, got %v", m.State())
	}
	if len(m.LikedIDs()) != 0 {
		t.Fatalf("expected empty set, got %v", m.LikedIDs())
	}
}

func TestToggleBeforeReadyIsNoop(t *testing.T) {
	m := likes.NewManager(newFakeRemote(), nil, testLogger(), time.Second)

	m.Toggle("1")
	m.Wait()
	if m.IsLiked("1") {
		t.Fatal("toggle must not apply before hydration")
	}
}

func TestUnlikeRollsBackOnFailure(t *testing.T) {
	r := newFakeRemote("1", "3")
	r.failIDs["1"] = true
	n := &countingNotifier{}
	m := readyManager(t, r, n)

	m.Toggle("1")
	if m.IsLiked("1") {
		t.Fatal("optimistic unlike must apply immediately")
	}

	m.Wait()
	if !m.IsLiked("1") {
		t.Fatal("failed unlike must roll back to liked")
	}
	if n.errors != 1 {
		t.Fatalf("expected one error notification, got %d", n.errors)
	}
}

func TestLikeSticksOnSuccess(t *testing.T) {
	m := readyManager(t, newFakeRemote(), nil)

	m.Toggle("5")
	if !m.IsLiked("5") {
		t.Fatal("optimistic like must apply immediately")
	}

	m.Wait()
	if !m.IsLiked("5") {
		t.Fatal("confirmed like must stay applied")
	}
}

func TestLikeRollsBackOnFailure(t *testing.T) {
	r := newFakeRemote()
	r.failIDs["5"] = true
	m := readyManager(t, r, nil)

	m.Toggle("5")
	m.Wait()
	if m.IsLiked("5") {
		t.Fatal("failed like must roll back to not liked")
	}
}

func TestTogglesOnDistinctProductsDoNotInterfere(t *testing.T) {
	r := newFakeRemote()
	r.failIDs["1"] = true
	m := readyManager(t, r, nil)

	m.Toggle("1")
	m.Toggle("2")
	m.Wait()

	if m.IsLiked("1") {
		t.Fatal("rollback of product 1 must not be skipped")
	}
	if !m.IsLiked("2") {
		t.Fatal("rollback of product 1 must not clobber product 2")
	}
}

func TestHungConfirmationTimesOutAndRollsBack(t *testing.T) {
	r := newFakeRemote()
	r.blockIDs["9"] = true
	m := likes.NewManager(r, nil, testLogger(), 20*time.Millisecond)
	m.Hydrate(context.Background())

	m.Toggle("9")
	if !m.IsLiked("9") {
		t.Fatal("optimistic like must apply immediately")
	}

	m.Wait()
	if m.IsLiked("9") {
		t.Fatal("timed-out like must roll back")
	}
}
