package booking

import (
	"testing"
	"time"

	"astromarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingDatesSkipsToday(t *testing.T) {
	now := time.Date(2026, time.January, 30, 22, 15, 0, 0, time.UTC)
	dates := UpcomingDates(now, BookingWindowDays)

	require.Len(t, dates, BookingWindowDays)
	assert.Equal(t, "2026-01-31", dates[0].Value)
	assert.Equal(t, "Sat, Jan 31", dates[0].Label)
	assert.Equal(t, "2026-02-06", dates[6].Value)
	assert.False(t, containsDate(dates, "2026-01-30"))
}

func TestConsultationStart(t *testing.T) {
	b := models.Booking{Date: "2026-02-03", Time: "02:00 PM"}
	start, err := ConsultationStart(b, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 3, 14, 0, 0, 0, time.UTC), start)

	_, err = ConsultationStart(models.Booking{Date: "2026-02-03", Time: "14h"}, time.UTC)
	assert.Error(t, err)
}
