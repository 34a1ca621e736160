package worker

import (
	"context"
	"slices"

	"github.com/hibiken/asynq"
)

// QueueStats is a point-in-time snapshot of one task queue.
type QueueStats struct {
	Queue     string `json:"queue"`
	Size      int    `json:"size"`
	Pending   int    `json:"pending"`
	Active    int    `json:"active"`
	Scheduled int    `json:"scheduled"`
	Retry     int    `json:"retry"`
	Archived  int    `json:"archived"`
	Processed int    `json:"processed_today"`
	Failed    int    `json:"failed_today"`
	Paused    bool   `json:"paused"`
}

type TaskInspector interface {
	QueueStats(ctx context.Context) ([]QueueStats, error)
}

type RedisTaskInspector struct {
	inspector *asynq.Inspector
}

func NewTaskInspector(redisOpt asynq.RedisClientOpt) *RedisTaskInspector {
	return &RedisTaskInspector{
		inspector: asynq.NewInspector(redisOpt),
	}
}

// QueueStats reports the sync queues in priority order. A queue that has
// never received a task is reported as empty.
func (i *RedisTaskInspector) QueueStats(ctx context.Context) ([]QueueStats, error) {
	known, err := i.inspector.Queues()
	if err != nil {
		return nil, err
	}

	stats := make([]QueueStats, 0, 2)
	for _, queue := range []string{QueueCritical, QueueDefault} {
		if !slices.Contains(known, queue) {
			stats = append(stats, QueueStats{Queue: queue})
			continue
		}

		info, err := i.inspector.GetQueueInfo(queue)
		if err != nil {
			return nil, err
		}

		stats = append(stats, QueueStats{
			Queue:     info.Queue,
			Size:      info.Size,
			Pending:   info.Pending,
			Active:    info.Active,
			Scheduled: info.Scheduled,
			Retry:     info.Retry,
			Archived:  info.Archived,
			Processed: info.Processed,
			Failed:    info.Failed,
			Paused:    info.Paused,
		})
	}

	return stats, nil
}

func (i *RedisTaskInspector) Close() error {
	return i.inspector.Close()
}
