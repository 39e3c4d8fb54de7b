package workers

import (
	"context"
	"log"
)

type StatsRefresher interface {
	RefreshStats(ctx context.Context, userID string) (bool, error)
}

type StatsJob struct {
	UserID string
}

// StatsWorker rewrites stale stats snapshots in the background so that a
// streak that lapsed while the user was away is corrected in storage.
type StatsWorker struct {
	refresher StatsRefresher
	jobs      chan StatsJob
	done      chan struct{}
}

func NewStatsWorker(refresher StatsRefresher) *StatsWorker {
	return &StatsWorker{
		refresher: refresher,
		jobs:      make(chan StatsJob, 100),
		done:      make(chan struct{}),
	}
}

func (w *StatsWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		log.Println("[WORKER] Stats worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] Stats worker shutting down...")
				return
			}
		}
	}()
}

// Done is closed once the worker loop has exited.
func (w *StatsWorker) Done() <-chan struct{} {
	return w.done
}

func (w *StatsWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StatsJob{UserID: userID}:
	default:
		log.Printf("[WORKER] Stats queue full! Dropping job for user %s", userID)
	}
}

func (w *StatsWorker) processJob(ctx context.Context, job StatsJob) {
	changed, err := w.refresher.RefreshStats(ctx, job.UserID)
	if err != nil {
		log.Printf("[WORKER] Failed to refresh stats for %s: %v", job.UserID, err)
		return
	}
	if changed {
		log.Printf("[WORKER] Stats refreshed for %s", job.UserID)
	}
}
