package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"astromarket/models"
	"astromarket/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandleReminderTask(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := HandleReminderTask(zap.New(core))

	task, _, err := tasks.NewReminderTask(models.ReminderPayload{BookingID: "b1", Title: "Soon"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))

	entries := logs.FilterMessage("Consultation reminder due").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "b1", entries[0].ContextMap()["booking"])
}

func TestHandleReminderTaskRejectsBadPayload(t *testing.T) {
	handler := HandleReminderTask(zap.NewNop())
	err := handler(context.Background(), asynq.NewTask(tasks.TypeConsultationReminder, []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
