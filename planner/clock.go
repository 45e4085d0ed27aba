package planner

import "time"

// Clock supplies the current time. Injected so age math stays deterministic
// in tests; nothing else in the engine reads ambient time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
