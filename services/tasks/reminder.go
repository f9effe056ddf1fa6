package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"astromarket/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeConsultationReminder = "reminder:consultation"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeConsultationReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.BookingID),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}

// ReminderPayloadFor builds the reminder text for a confirmed booking.
func ReminderPayloadFor(b models.Booking, startsAt time.Time) models.ReminderPayload {
	return models.ReminderPayload{
		BookingID:      b.ID,
		UserID:         b.UserID,
		AstrologerName: b.AstrologerName,
		Title:          "Your consultation starts soon",
		Body:           fmt.Sprintf("Your session with %s starts at %s on %s.", b.AstrologerName, b.Time, b.Date),
		StartsAt:       startsAt,
	}
}

// ReminderFireTime is lead before startsAt, but never earlier than now.
func ReminderFireTime(startsAt, now time.Time, lead time.Duration) time.Time {
	fireAt := startsAt.Add(-lead)
	if fireAt.Before(now) {
		return now
	}
	return fireAt
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqReminderScheduler queues consultation reminders on the asynq client.
type AsynqReminderScheduler struct {
	client enqueuer
	lead   time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewAsynqReminderScheduler(client *asynq.Client, lead time.Duration, logger *zap.Logger) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: client, lead: lead, now: time.Now, logger: logger}
}

func (s *AsynqReminderScheduler) ScheduleConsultationReminder(ctx context.Context, b models.Booking, startsAt time.Time) error {
	fireAt := ReminderFireTime(startsAt, s.now(), s.lead)
	task, opts, err := NewReminderTask(ReminderPayloadFor(b, startsAt), fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("Reminder scheduled",
			zap.String("booking", b.ID),
			zap.String("task", info.ID),
			zap.Time("fireAt", fireAt),
		)
	}
	return nil
}
