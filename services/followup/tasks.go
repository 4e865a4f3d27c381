package followup

import (
	"encoding/json"
	"time"

	"carelink/models"
	"carelink/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeFollowupDeliver = "followup:deliver"

// NewDeliverTask builds the delayed check-in task.
func NewDeliverTask(payload models.FollowupPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeFollowupDeliver, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqScheduler queues follow-up tasks on Redis; the worker in
// cron/worker.go delivers them into the per-user inbox when they fire.
type AsynqScheduler struct {
	Client *asynq.Client
	Delay  time.Duration
}

// NewAsynqScheduler builds the queue-backed scheduler.
func NewAsynqScheduler(client *asynq.Client, delay time.Duration) *AsynqScheduler {
	return &AsynqScheduler{Client: client, Delay: delay}
}

// Arm enqueues one reminder for userID, to fire after the configured
// delay.
func (s *AsynqScheduler) Arm(userID, name string) {
	logger := utils.GetLogger()

	payload := models.FollowupPayload{
		UserID:  userID,
		Name:    name,
		Message: ReminderMessage(name),
	}
	task, opts, err := NewDeliverTask(payload, time.Now().Add(s.Delay))
	if err != nil {
		logger.Error("Failed to build follow-up task", zap.Error(err))
		return
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		logger.Error("Failed to enqueue follow-up task",
			zap.String("userID", userID),
			zap.Error(err))
		return
	}
	logger.Info("Follow-up task enqueued",
		zap.String("userID", userID),
		zap.Duration("delay", s.Delay))
}
