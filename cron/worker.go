package cron

import (
	"context"
	"log"
	"time"

	"espuma/config"
	"espuma/services/booking"

	"github.com/hibiken/asynq"
)

const TypeReservationSweep = "reservation:sweep"

// InitSweepWorker runs the reservation-expiry sweep in the background: an
// asynq worker consumes sweep tasks and a scheduler enqueues one every
// minute. Reads already lazy-filter expired holds, so the sweep only keeps
// the reservation table from growing without bound.
func InitSweepWorker(svc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationSweep, handleSweepTask(svc))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1m", asynq.NewTask(TypeReservationSweep, nil)); err != nil {
		log.Printf("[SweepWorker] failed to register sweep schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[SweepWorker] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSweepTask(svc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		swept, err := svc.SweepExpired(ctx)
		if err != nil {
			log.Printf("[SweepHandler] sweep failed: %v", err)
			return err
		}
		if swept > 0 {
			log.Printf("[SweepHandler] evicted %d expired reservations", swept)
		}
		return nil
	}
}
