package scheduler

import (
	"context"
	"fmt"

	"aiconsult_backend/internal/events"
	"aiconsult_backend/platform/config"
	"aiconsult_backend/platform/logger"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	bus    events.Bus
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, bus events.Bus, log *logger.Logger) (*Worker, error) {
	opt, err := redisClientOpt(cfg)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	w := &Worker{
		bus: bus,
		log: log,
	}
	w.server = asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(w.reportError),
	})
	w.mux = newMux(w)

	return w, nil
}

func newMux(w *Worker) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskContactFollowUp, w.handleContactFollowUp)
	return mux
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

// handleContactFollowUp publishes synchronously so a failed email is retried
// by asynq.
func (w *Worker) handleContactFollowUp(ctx context.Context, task *asynq.Task) error {
	submissionID, err := ParseContactFollowUpPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	if w.bus == nil {
		return nil
	}

	return w.bus.PublishSync(ctx, events.ContactFollowUpDue{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: submissionID,
	})
}

func (w *Worker) reportError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetried, _ := asynq.GetMaxRetry(ctx)
	w.log.Error("scheduled task failed",
		"task", task.Type(),
		"retry", retried,
		"maxRetry", maxRetried,
		"error", err,
	)
}
