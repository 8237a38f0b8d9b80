package services_test

import "time"

// fixedNow gives every test a stable, non-wall-clock timestamp for
// plan construction, independent of services.SystemClock.
func fixedNow() time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}
