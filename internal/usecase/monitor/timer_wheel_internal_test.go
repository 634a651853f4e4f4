//go:build unit

package monitor

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerWheel_StaleFireKeepsReplacement(t *testing.T) {
	w := NewTimerWheel()
	defer w.Stop()

	id := uuid.New()
	w.Arm(id, time.Now().Add(time.Hour))
	w.mu.Lock()
	stale := w.timers[id].gen
	w.mu.Unlock()

	// re-armed while the first timer's callback was already running
	w.Arm(id, time.Now().Add(2*time.Hour))
	w.fire(id, stale)

	require.Equal(t, 1, w.Pending(), "replacement timer must stay armed")
	select {
	case <-w.Fired():
		t.Fatal("stale timer delivered a deadline")
	default:
	}

	w.Disarm(id)
	assert.Zero(t, w.Pending())
}

func TestTimerWheel_CurrentFireDelivers(t *testing.T) {
	w := NewTimerWheel()
	defer w.Stop()

	id := uuid.New()
	w.Arm(id, time.Now().Add(time.Hour))
	w.mu.Lock()
	gen := w.timers[id].gen
	w.mu.Unlock()

	w.fire(id, gen)

	assert.Zero(t, w.Pending())
	select {
	case got := <-w.Fired():
		assert.Equal(t, id, got)
	default:
		t.Fatal("deadline not delivered")
	}
}
