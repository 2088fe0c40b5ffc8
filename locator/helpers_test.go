package locator_test

import (
	"testing"
	"time"

	_ "time/tzdata"
)

func locationET(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return loc
}

func timeRef(t *testing.T) time.Time {
	t.Helper()
	return time.Unix(1700000000, 0).UTC()
}
