// Package clock abstracts the wall clock so timestamps can be pinned in tests
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/dungeon-tracker/internal/pkg/clock Clock

type Clock interface {
	Now() time.Time
}

// UTC reads the system clock in UTC so stored snapshots and evaluation
// timestamps compare the same regardless of the host's zone
type UTC struct{}

func (UTC) Now() time.Time {
	return time.Now().UTC()
}

func New() Clock {
	return UTC{}
}

// Fixed always reports the same instant
type Fixed struct {
	At time.Time
}

func (c Fixed) Now() time.Time {
	return c.At
}
