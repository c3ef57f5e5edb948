package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vidly/config"
	rentalRepo "vidly/database/repository/rental"
	"vidly/services/tasks"
	"vidly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitOverdueWorker runs the async worker in background. It consumes the
// overdue-check tasks that checkout schedules.
func InitOverdueWorker(rentals rentalRepo.RentalRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeOverdueCheck, handleOverdueTask(rentals))

	go func() {
		log.Println("[OverdueWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[OverdueWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[OverdueWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleOverdueTask re-reads the rental when the task fires. A rental
// returned in the meantime is simply skipped.
func handleOverdueTask(rentals rentalRepo.RentalRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.OverduePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("overdue task: invalid payload", zap.Error(err))
			return err
		}

		rental, err := rentals.GetByID(ctx, p.RentalID)
		if err != nil {
			return err
		}
		if rental == nil || rental.Returned() {
			return nil
		}

		utils.GetLogger().Warn("rental overdue",
			zap.String("rentalId", rental.ID),
			zap.String("customerId", rental.Customer.ID),
			zap.String("movieTitle", rental.Movie.Title),
			zap.Time("dateRental", rental.DateRental),
		)
		return nil
	}
}
