package countdown

//go:generate mockgen -source=trigger.go -destination=mock_trigger_test.go -package=countdown

// Trigger schedules recomputes while the engine is running. Stop is the
// teardown hook: once it returns, fire must not be called again. fire may run
// on another goroutine and must not block.
type Trigger interface {
	Start(fire func())
	Stop()
}

// Manual is a Trigger that only fires when told to. Hosts that drive their
// own recompute loop use it, and so do tests.
type Manual struct {
	fire   func()
	Starts int
	Stops  int
}

func (m *Manual) Start(fire func()) {
	m.fire = fire
	m.Starts++
}

func (m *Manual) Stop() {
	if m.fire != nil {
		m.Stops++
	}
	m.fire = nil
}

// Armed reports whether the trigger is between Start and Stop.
func (m *Manual) Armed() bool {
	return m.fire != nil
}

// Fire invokes the callback if armed and reports whether it did.
func (m *Manual) Fire() bool {
	if m.fire == nil {
		return false
	}
	m.fire()
	return true
}
