package tasks

import (
	"fmt"
	"time"

	"vidly/config"

	"github.com/hibiken/asynq"
)

// Scheduler enqueues scheduled rental tasks onto the asynq queue.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler creates a Scheduler backed by the configured Redis queue.
func NewScheduler() *Scheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &Scheduler{client: client}
}

// ScheduleOverdueCheck enqueues an overdue check for the rental at the
// given time.
func (s *Scheduler) ScheduleOverdueCheck(rentalID string, checkAt time.Time) error {
	task, opts, err := NewOverdueTask(rentalID, checkAt)
	if err != nil {
		return fmt.Errorf("build overdue task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue overdue task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
