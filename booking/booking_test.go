package booking_test

import (
	"testing"
	"time"

	bk "github.com/lighthouse-academy/lighthouse-backend/booking"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	cases := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"identical ranges", at(0), at(2), at(0), at(2), true},
		{"partial overlap", at(0), at(2), at(1), at(3), true},
		{"contained range", at(0), at(4), at(1), at(2), true},
		{"back to back", at(0), at(2), at(2), at(4), false},
		{"back to back reversed", at(2), at(4), at(0), at(2), false},
		{"disjoint", at(0), at(1), at(3), at(4), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, bk.Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd))
			require.Equal(t, c.want, bk.Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd))
		})
	}
}

func TestBlocking(t *testing.T) {
	require.True(t, bk.Booking{Status: bk.StatusPending}.Blocking())
	require.True(t, bk.Booking{Status: bk.StatusConfirmed}.Blocking())
	require.False(t, bk.Booking{Status: bk.StatusCancelled}.Blocking())
	require.False(t, bk.Booking{Status: bk.StatusCompleted}.Blocking())
}
