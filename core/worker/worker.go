package worker

import (
	"context"

	"collabtime-api/core/config"
	"collabtime-api/core/logger"

	"github.com/hibiken/asynq"
)

// Client enqueues background tasks; modules register handlers on the mux
// before Run is called.
type Client struct {
	client *asynq.Client
}

var (
	instance *Client
	mux      = asynq.NewServeMux()
)

func GetClient() *Client {
	return instance
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func InitClient(cfg config.RedisConfig) *Client {
	instance = &Client{client: asynq.NewClient(redisOpt(cfg))}
	return instance
}

// Enqueue schedules a task for background processing
func (c *Client) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error {
	info, err := c.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		logger.Error("Worker:Enqueue", err, "type", task.Type())
		return err
	}
	logger.Info("task enqueued", "type", task.Type(), "id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// HandleFunc registers a task handler on the shared mux
func HandleFunc(taskType string, handler func(context.Context, *asynq.Task) error) {
	mux.HandleFunc(taskType, handler)
}

// Run starts the asynq server; it blocks until Shutdown
func Run(cfg config.RedisConfig) error {
	srv := asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})
	return srv.Run(mux)
}
