package testenv

// This file implements a recording mechanism that tracks environment
// variable reads, so tests can assert which knobs a run actually touched.

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

var (
	// recording tracks whether environment variable reads should be recorded.
	// Uses atomic.Bool for thread-safe access without locks.
	recording *atomic.Bool

	// hasObservers tracks whether any observers are registered, so reads
	// can skip notification entirely when nobody is listening.
	hasObservers *atomic.Bool

	// readCount counts every environment variable read since process start,
	// whether or not recording is enabled.
	readCount atomic.Int64

	// missCount counts reads where the variable was not set.
	missCount atomic.Int64

	// eventMutex protects concurrent access to the events slice.
	eventMutex sync.Mutex

	// events stores recorded read events while recording is enabled.
	events []ReadEvent

	// observerMutex protects concurrent access to the observers slice.
	observerMutex sync.RWMutex

	observers []observerEntry

	// nextObserverID generates unique IDs so observers can be removed by
	// identity rather than by function pointer comparison.
	nextObserverID atomic.Int64
)

func init() {
	recording = atomic.NewBool(false)
	hasObservers = atomic.NewBool(false)
}

// ReadEvent represents a single environment variable read.
type ReadEvent struct {
	// Time is when the environment variable was read.
	Time time.Time `json:"time"`

	// Key is the environment variable name.
	Key string `json:"key"`

	// Value is the raw string value of the environment variable.
	Value string `json:"value,omitempty"`

	// IsSet indicates whether the environment variable was actually set.
	IsSet bool `json:"is_set"`
}

// Observer is a callback invoked synchronously on each environment
// variable read. Observers should return quickly.
type Observer func(ReadEvent)

type observerEntry struct {
	id int64
	fn Observer
}

// EnableRecording controls whether environment variable reads are
// recorded. When enabled, each read appends a ReadEvent that can be
// retrieved with CollectEvents.
func EnableRecording(enable bool) {
	recording.Store(enable)
}

// IsRecording returns whether read recording is currently enabled.
func IsRecording() bool {
	return recording.Load()
}

// ReadCount returns the number of environment variable reads since the
// process started. Counted regardless of the recording switch.
func ReadCount() int64 {
	return readCount.Load()
}

// MissCount returns the number of reads that found no value set.
func MissCount() int64 {
	return missCount.Load()
}

// CollectEvents returns a copy of all recorded read events, optionally
// clearing the internal buffer after copying.
func CollectEvents(shouldClear bool) []ReadEvent {
	eventMutex.Lock()
	defer eventMutex.Unlock()

	out := make([]ReadEvent, len(events))
	copy(out, events)

	if shouldClear {
		events = nil
	}

	return out
}

// RegisterObserver registers a callback invoked on every environment
// variable read. It returns an unregister function that is safe to call
// more than once.
func RegisterObserver(obs Observer) func() {
	observerID := nextObserverID.Add(1)

	observerMutex.Lock()

	observers = append(observers, observerEntry{id: observerID, fn: obs})

	hasObservers.Store(true)

	observerMutex.Unlock()

	unregistered := false

	return func() {
		if unregistered {
			return
		}

		unregistered = true

		observerMutex.Lock()
		defer observerMutex.Unlock()

		for i, entry := range observers {
			if entry.id == observerID {
				observers = append(observers[:i], observers[i+1:]...)

				break
			}
		}

		if len(observers) == 0 {
			hasObservers.Store(false)
		}
	}
}

// record is called on every read. Counters are always updated; events
// are buffered only while recording is enabled.
func record(key, value string, present bool) {
	readCount.Add(1)

	if !present {
		missCount.Add(1)
	}

	if !recording.Load() && !hasObservers.Load() {
		return
	}

	event := ReadEvent{
		Time:  time.Now(),
		Key:   key,
		Value: value,
		IsSet: present,
	}

	if recording.Load() {
		eventMutex.Lock()

		events = append(events, event)

		eventMutex.Unlock()
	}

	notifyObservers(event)
}

func notifyObservers(event ReadEvent) {
	if !hasObservers.Load() {
		return
	}

	observerMutex.RLock()

	obs := make([]observerEntry, len(observers))
	copy(obs, observers)

	observerMutex.RUnlock()

	for _, entry := range obs {
		entry.fn(event)
	}
}
