package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"carelink/config"
	"carelink/models"
	"carelink/services/followup"
	"carelink/services/session"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitFollowupWorker runs the async worker in background. Fired tasks
// only append to the target user's inbox; /check-followups drains it.
func InitFollowupWorker(store *session.Store) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFollowupQueueDB,
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
	mux.HandleFunc(followup.TypeFollowupDeliver, handleFollowupTask(store))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowupWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowupWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowupWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleFollowupTask(store *session.Store) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.FollowupPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowupHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[FollowupHandler] delivering check-in for %s", p.UserID)
		store.GetOrCreate(p.UserID).PushFollowup(p.Message)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFollowupQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[FollowupWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
