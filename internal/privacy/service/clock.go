package service

import "time"

// Clock supplies the current time. A nil Clock uses time.Now.
type Clock func() time.Time

// now is UTC at microsecond precision, the finest both databases keep.
func (c Clock) now() time.Time {
	t := time.Now()
	if c != nil {
		t = c()
	}
	return t.UTC().Truncate(time.Microsecond)
}
