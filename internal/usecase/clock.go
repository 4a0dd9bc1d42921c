package usecase

import "time"

// Clock supplies "now" so status derivation stays deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock is the production clock (UTC wall time).
func SystemClock() Clock { return systemClock{} }
