package countdown

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineStopsTriggerOnEveryRunningExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	trig := NewMockTrigger(ctrl)
	clock := newFakeClock()
	e := NewEngine(clock, trig, nil)
	e.Load(20)

	gomock.InOrder(
		trig.EXPECT().Start(gomock.Any()),
		trig.EXPECT().Stop(), // manual pause
		trig.EXPECT().Start(gomock.Any()),
		trig.EXPECT().Stop(), // reload while running
		trig.EXPECT().Start(gomock.Any()),
		trig.EXPECT().Stop(), // reached zero
	)

	require.NoError(t, e.Start())
	e.Pause()
	require.NoError(t, e.Start())
	e.Load(5)
	require.NoError(t, e.Start())
	clock.Advance(5 * time.Second)
	e.Recompute()

	// Idle engine: neither dispose nor pause may touch the trigger again.
	e.Pause()
	e.Dispose()
}

func TestEngineHandsNotifyToTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	trig := NewMockTrigger(ctrl)
	var notified int
	e := NewEngine(newFakeClock(), trig, func() { notified++ })
	e.Load(10)

	trig.EXPECT().Start(gomock.Any()).Do(func(fire func()) { fire() })
	trig.EXPECT().Stop()

	require.NoError(t, e.Start())
	e.Dispose()
	assert.Equal(t, 1, notified)
}

func TestManualTriggerLifecycle(t *testing.T) {
	m := &Manual{}
	assert.False(t, m.Fire())
	m.Stop()
	assert.Equal(t, 0, m.Stops)

	var fired int
	m.Start(func() { fired++ })
	assert.True(t, m.Armed())
	assert.True(t, m.Fire())
	m.Stop()
	assert.False(t, m.Fire())
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, m.Starts)
	assert.Equal(t, 1, m.Stops)
}

func TestTickerFiresUntilStopped(t *testing.T) {
	tk := NewTicker(5 * time.Millisecond)
	var count atomic.Int32
	tk.Start(func() { count.Add(1) })

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)
	tk.Stop()

	after := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, count.Load(), "ticker fired after Stop returned")
}

func TestTickerRestartAndRepeatedStop(t *testing.T) {
	tk := NewTicker(5 * time.Millisecond)
	var first, second atomic.Int32
	tk.Start(func() { first.Add(1) })
	tk.Start(func() { second.Add(1) })

	require.Eventually(t, func() bool { return second.Load() >= 2 }, time.Second, time.Millisecond)
	tk.Stop()
	tk.Stop()

	frozen := first.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, first.Load())
}

func TestNewTickerDefaultsPeriod(t *testing.T) {
	assert.Equal(t, time.Second, NewTicker(0).Period())
	assert.Equal(t, 16*time.Millisecond, NewTicker(16*time.Millisecond).Period())
}
