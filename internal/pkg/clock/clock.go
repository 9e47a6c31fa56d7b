// Package clock stamps batch scans
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-legality/internal/pkg/clock Clock

// Clock returns the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns the wall clock time in UTC
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return systemClock{}
}
