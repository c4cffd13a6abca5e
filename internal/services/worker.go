package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"careermatch/cv-matcher/internal/repositories"
)

// Worker drains queued match runs. Runs are independent of each other, so
// they can be processed by several goroutines without ordering guarantees.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueRun(runID uuid.UUID)
}

type worker struct {
	runRepo        repositories.MatchRunRepository
	matcherService MatcherService
	runQueue       chan uuid.UUID
	concurrency    int
	wg             sync.WaitGroup
	stopChan       chan struct{}
}

func NewWorker(
	runRepo repositories.MatchRunRepository,
	matcherService MatcherService,
	concurrency int,
) Worker {
	return &worker{
		runRepo:        runRepo,
		matcherService: matcherService,
		runQueue:       make(chan uuid.UUID, 100),
		concurrency:    concurrency,
		stopChan:       make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processRuns(ctx, i+1)
	}

	// Pick up runs that were queued while no worker was listening
	w.wg.Add(1)
	go w.pollPendingRuns(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueRun implements Worker.
func (w *worker) EnqueueRun(runID uuid.UUID) {
	select {
	case w.runQueue <- runID:
		log.Printf("📥 Match run %s enqueued\n", runID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue run %s\n", runID)
	}
}

func (w *worker) processRuns(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing match runs\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case runID := <-w.runQueue:
			log.Printf("👷 Worker #%d processing run %s\n", workerID, runID)
			if err := w.matcherService.ProcessRun(ctx, runID); err != nil {
				log.Printf("❌ Worker #%d failed to process run %s: %v\n", workerID, runID, err)
			} else {
				log.Printf("✅ Worker #%d completed run %s\n", workerID, runID)
			}
		}
	}
}

func (w *worker) pollPendingRuns(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	log.Println("🔄 Starting pending runs poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending runs poller stopped")
			return
		case <-ticker.C:
			pendingRuns, err := w.runRepo.FindPendingRuns(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending runs: %v\n", err)
				continue
			}

			if len(pendingRuns) > 0 {
				log.Printf("📋 Found %d pending runs\n", len(pendingRuns))
			}

			for _, run := range pendingRuns {
				w.EnqueueRun(run.ID)
			}
		}
	}
}
