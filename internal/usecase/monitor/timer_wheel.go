package monitor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const firedBuffer = 256

// TimerWheel keeps one in-process timer per active session. Fired deadlines
// are delivered on Fired; when the buffer is full the id is dropped and the
// next sweep picks the session up.
type TimerWheel struct {
	mu     sync.Mutex
	timers map[uuid.UUID]armedTimer
	gen    uint64
	fired  chan uuid.UUID
	now    func() time.Time
	closed bool
}

type armedTimer struct {
	gen   uint64
	timer *time.Timer
}

func NewTimerWheel() *TimerWheel {
	return &TimerWheel{
		timers: make(map[uuid.UUID]armedTimer),
		fired:  make(chan uuid.UUID, firedBuffer),
		now:    time.Now,
	}
}

func (w *TimerWheel) Arm(bookingID uuid.UUID, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if t, ok := w.timers[bookingID]; ok {
		t.timer.Stop()
	}

	delay := at.Sub(w.now())
	if delay < 0 {
		delay = 0
	}
	w.gen++
	gen := w.gen
	w.timers[bookingID] = armedTimer{
		gen: gen,
		timer: time.AfterFunc(delay, func() {
			w.fire(bookingID, gen)
		}),
	}
}

func (w *TimerWheel) Disarm(bookingID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[bookingID]; ok {
		t.timer.Stop()
		delete(w.timers, bookingID)
	}
}

func (w *TimerWheel) Fired() <-chan uuid.UUID {
	return w.fired
}

// Pending returns the number of armed timers.
func (w *TimerWheel) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

// Stop cancels every timer. Arm is a no-op afterwards.
func (w *TimerWheel) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, t := range w.timers {
		t.timer.Stop()
		delete(w.timers, id)
	}
	w.closed = true
}

// fire runs on the timer goroutine. A timer replaced by Arm after it
// already expired finds a newer generation in the map and does nothing.
func (w *TimerWheel) fire(bookingID uuid.UUID, gen uint64) {
	w.mu.Lock()
	current, ok := w.timers[bookingID]
	if !ok || current.gen != gen {
		w.mu.Unlock()
		return
	}
	delete(w.timers, bookingID)
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}
	select {
	case w.fired <- bookingID:
	default:
		slog.Warn("session timer dropped, sweep will expire it", "booking_id", bookingID)
	}
}
