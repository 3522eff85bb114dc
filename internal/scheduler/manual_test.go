package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestManual_AfterFiresOnceWhenDue(t *testing.T) {
	m := NewManual(epoch)
	calls := 0
	m.After(2500*time.Millisecond, func() { calls++ })

	m.Advance(2499 * time.Millisecond)
	assert.Equal(t, 0, calls)

	m.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)

	m.Advance(time.Hour)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_EveryRepeatsUntilCancelled(t *testing.T) {
	m := NewManual(epoch)
	var seen []time.Time
	h := m.Every(time.Second, func() { seen = append(seen, m.Now()) })

	m.Advance(3 * time.Second)
	require.Len(t, seen, 3)
	assert.Equal(t, epoch.Add(3*time.Second), seen[2])

	h.Cancel()
	h.Cancel()
	m.Advance(10 * time.Second)
	assert.Len(t, seen, 3)
}

func TestManual_JobsRunInDueOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []string
	m.After(3*time.Second, func() { order = append(order, "c") })
	m.After(time.Second, func() { order = append(order, "a") })
	m.After(time.Second, func() { order = append(order, "b") })

	m.Advance(5 * time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, epoch.Add(5*time.Second), m.Now())
}

func TestManual_JobMayCancelItselfAndSchedule(t *testing.T) {
	m := NewManual(epoch)
	ticks := 0
	var h Handle
	h = m.Every(time.Second, func() {
		ticks++
		if ticks == 2 {
			h.Cancel()
			m.After(time.Second, func() { ticks += 10 })
		}
	})

	m.Advance(10 * time.Second)

	assert.Equal(t, 12, ticks)
	assert.Equal(t, 0, m.Pending())
}
