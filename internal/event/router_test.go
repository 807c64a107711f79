package event

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestRouterDelivers(t *testing.T) {
	r := NewRouter()
	id := uuid.New()
	box, err := r.Register(id)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := r.Submit(id, "hello"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	msg, ok := box.TryReceive()
	if !ok {
		t.Fatal("expected a message")
	}
	if msg.Target != id || msg.Payload != "hello" {
		t.Errorf("unexpected message %+v", msg)
	}
	if _, ok := box.TryReceive(); ok {
		t.Error("mailbox should be empty")
	}
}

func TestRouterRegisterErrors(t *testing.T) {
	r := NewRouter()
	id := uuid.New()

	if _, err := r.Register(uuid.Nil); !errors.Is(err, ErrNilTarget) {
		t.Errorf("expected ErrNilTarget, got %v", err)
	}
	if _, err := r.Register(id); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := r.Register(id); !errors.Is(err, ErrTargetExists) {
		t.Errorf("expected ErrTargetExists, got %v", err)
	}
}

func TestRouterUnknownTarget(t *testing.T) {
	r := NewRouter()
	if err := r.Submit(uuid.New(), 1); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}
	if r.Stats().Dropped != 1 {
		t.Errorf("expected 1 dropped, got %d", r.Stats().Dropped)
	}
}

func TestRouterQueueFull(t *testing.T) {
	r := NewRouter(WithQueueSize(2))
	id := uuid.New()
	box, _ := r.Register(id)

	for i := 0; i < 2; i++ {
		if err := r.Submit(id, i); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}
	if err := r.Submit(id, 2); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}

	var got []int
	n := box.Drain(func(m Message) { got = append(got, m.Payload.(int)) })
	if n != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("expected [0 1] in order, got %v", got)
	}
}

type revision struct {
	key string
	rev int
}

func (r revision) Supersedes(queued any) bool {
	q, ok := queued.(revision)
	return ok && q.key == r.key && q.rev < r.rev
}

func TestRouterParksSupersedingPayloads(t *testing.T) {
	r := NewRouter(WithQueueSize(1))
	id := uuid.New()
	box, _ := r.Register(id)

	if err := r.Submit(id, "edit"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	for _, msg := range []any{revision{"a", 1}, revision{"a", 3}, revision{"a", 2}} {
		if err := r.Submit(id, msg); err != nil {
			t.Fatalf("Submit %v failed: %v", msg, err)
		}
	}
	if err := r.Submit(id, revision{"b", 1}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull once the overflow is full, got %v", err)
	}
	if err := r.Submit(id, "plain"); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull for a plain payload, got %v", err)
	}

	select {
	case <-box.Overflow():
	default:
		t.Error("expected an overflow signal")
	}
	if box.Len() != 2 {
		t.Errorf("Len = %d; want 2", box.Len())
	}

	var got []any
	box.Drain(func(m Message) { got = append(got, m.Payload) })
	want := []any{"edit", revision{"a", 3}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("delivered %v; want %v", got, want)
	}

	st := r.Stats()
	if st.Parked != 3 || st.Dropped != 2 {
		t.Errorf("stats = %+v; want 3 parked, 2 dropped", st)
	}
}

func TestRouterClose(t *testing.T) {
	r := NewRouter()
	id := uuid.New()
	box, _ := r.Register(id)
	_ = r.Submit(id, "queued")

	r.Close()
	r.Close()

	if err := r.Submit(id, "late"); !errors.Is(err, ErrRouterClosed) {
		t.Errorf("expected ErrRouterClosed, got %v", err)
	}
	if _, err := r.Register(uuid.New()); !errors.Is(err, ErrRouterClosed) {
		t.Errorf("expected ErrRouterClosed, got %v", err)
	}

	var payloads []any
	for m := range box.C() {
		payloads = append(payloads, m.Payload)
	}
	if len(payloads) != 1 || payloads[0] != "queued" {
		t.Errorf("queued message should survive close, got %v", payloads)
	}
}

func TestRouterUnregister(t *testing.T) {
	r := NewRouter()
	id := uuid.New()
	box, _ := r.Register(id)

	r.Unregister(id)
	if _, ok := <-box.C(); ok {
		t.Error("channel should be closed")
	}
	if err := r.Submit(id, 1); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}
	if r.Stats().Targets != 0 {
		t.Errorf("expected no targets, got %d", r.Stats().Targets)
	}
}

func TestRouterConcurrentSubmit(t *testing.T) {
	r := NewRouter(WithQueueSize(1000))
	id := uuid.New()
	box, _ := r.Register(id)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = r.Submit(id, i)
			}
		}()
	}
	wg.Wait()

	if box.Len() != 400 {
		t.Errorf("expected 400 queued, got %d", box.Len())
	}
	if r.Stats().Submitted != 400 {
		t.Errorf("expected 400 submitted, got %d", r.Stats().Submitted)
	}
}

func TestSinkFunc(t *testing.T) {
	var got any
	var s Sink = SinkFunc(func(_ uuid.UUID, msg any) error {
		got = msg
		return nil
	})
	_ = s.Submit(uuid.New(), 42)
	if got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
}
