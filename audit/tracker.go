package audit

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/smallbox"
	"github.com/wippyai/smallbox/errors"
)

// Handle identifies one tracked storage lifecycle.
// Handle 0 is reserved and always invalid.
type Handle uint64

// Mode records which storage mode a tracked payload uses.
type Mode uint8

const (
	ModeInline Mode = iota
	ModeHeap
)

func (m Mode) String() string {
	if m == ModeInline {
		return "inline"
	}
	return "heap"
}

// Event types for storage lifecycle notifications.
type EventType uint8

const (
	EventStored EventType = iota
	EventConsumed
)

// Event represents a storage lifecycle event.
type Event struct {
	Handle   Handle
	TypeName string
	Size     uintptr
	Mode     Mode
	Type     EventType
}

// Observer receives notifications about storage lifecycle events.
type Observer interface {
	OnStorageEvent(Event)
}

// Leak describes a tracked storage that was never consumed.
type Leak struct {
	Handle   Handle
	TypeName string
	Size     uintptr
	Mode     Mode
}

// Tracker records live erased storages so that leaks (storages never
// extracted or adopted) can be found. It is a debugging aid: the raw
// storage API keeps working without one.
type Tracker struct {
	live      map[Handle]Leak
	next      Handle
	mu        sync.Mutex
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{live: make(map[Handle]Leak)}
}

// Track registers a storage lifecycle for payload type T and returns its
// handle. Returns 0 on a closed tracker.
func Track[T any](t *Tracker) Handle {
	mode := ModeHeap
	if smallbox.ShouldInline[T]() {
		mode = ModeInline
	}
	name := typeName[T]()
	size := smallbox.SizeOf[T]()

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}
	t.next++
	h := t.next
	t.live[h] = Leak{Handle: h, TypeName: name, Size: size, Mode: mode}
	t.mu.Unlock()

	Logger().Debug("storage tracked",
		zap.Uint64("handle", uint64(h)),
		zap.String("type", name),
		zap.Uint64("size", uint64(size)),
		zap.Stringer("mode", mode))

	t.notify(Event{Handle: h, TypeName: name, Size: size, Mode: mode, Type: EventStored})
	return h
}

// Erase moves v into erased storage and tracks its lifecycle.
func Erase[T any](t *Tracker, v T) (smallbox.Erased, Handle) {
	return smallbox.Erase(v), Track[T](t)
}

// Extract consumes a tracked storage, marking its lifecycle complete.
// The usual type contract of smallbox.Extract applies.
func Extract[T any](t *Tracker, e *smallbox.Erased, h Handle) T {
	t.Consumed(h)
	return smallbox.Extract[T](e)
}

// Adopt converts a tracked storage into a typed Box, marking its lifecycle
// complete; the Box's own Close protocol takes over from here.
func Adopt[T any](t *Tracker, e smallbox.Erased, h Handle) smallbox.Box[T] {
	t.Consumed(h)
	return smallbox.FromErased[T](e)
}

// Consumed marks a tracked storage as extracted or adopted. Reports whether
// the handle was live.
func (t *Tracker) Consumed(h Handle) bool {
	t.mu.Lock()
	rec, ok := t.live[h]
	if ok {
		delete(t.live, h)
	}
	t.mu.Unlock()
	if !ok {
		return false
	}

	Logger().Debug("storage consumed",
		zap.Uint64("handle", uint64(h)),
		zap.String("type", rec.TypeName))

	t.notify(Event{Handle: h, TypeName: rec.TypeName, Size: rec.Size, Mode: rec.Mode, Type: EventConsumed})
	return true
}

// Len returns the number of live tracked storages.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Report returns the storages still live, without consuming them.
func (t *Tracker) Report() []Leak {
	t.mu.Lock()
	defer t.mu.Unlock()
	leaks := make([]Leak, 0, len(t.live))
	for _, rec := range t.live {
		leaks = append(leaks, rec)
	}
	return leaks
}

// Subscribe adds an observer for lifecycle events.
func (t *Tracker) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Tracker) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Close stops the tracker. Any storage still live is logged and reported
// through the returned error; the payloads themselves cannot be reclaimed
// here, since the tracker holds metadata, not the storages.
func (t *Tracker) Close() error {
	t.mu.Lock()
	t.closed = true
	leaked := len(t.live)
	leaks := make([]Leak, 0, leaked)
	for _, rec := range t.live {
		leaks = append(leaks, rec)
	}
	t.live = map[Handle]Leak{}
	t.mu.Unlock()

	if leaked == 0 {
		return nil
	}
	for _, l := range leaks {
		Logger().Warn("leaked storage",
			zap.Uint64("handle", uint64(l.Handle)),
			zap.String("type", l.TypeName),
			zap.Uint64("size", uint64(l.Size)),
			zap.Stringer("mode", l.Mode))
	}
	return errors.Leak(leaked)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func (t *Tracker) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnStorageEvent(e)
	}
}
