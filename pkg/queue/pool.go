// Package queue runs deferred work (template inference, evaluation
// execution, optimization) on a pool of background workers. Jobs own their
// context and transactions; request handlers only enqueue.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Job is one unit of background work.
type Job struct {
	ID   string
	Kind string
	Run  func(ctx context.Context) error
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is a point-in-time snapshot of one worker.
type WorkerHealth struct {
	ID            string       `json:"id"`
	Status        WorkerStatus `json:"status"`
	CurrentJobID  string       `json:"current_job_id,omitempty"`
	JobsProcessed int          `json:"jobs_processed"`
	LastActivity  time.Time    `json:"last_activity"`
}

// Pool manages background workers draining an unbounded in-process FIFO.
// Submit never blocks producers.
type Pool struct {
	workerCount int
	workers     []*worker
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	mu      sync.Mutex
	jobs    []Job
	notify  chan struct{}
	started bool
}

// NewPool creates a pool with the given number of workers.
func NewPool(workerCount int) *Pool {
	if workerCount <= 0 {
		workerCount = 2
	}
	return &Pool{
		workerCount: workerCount,
		stopCh:      make(chan struct{}),
		notify:      make(chan struct{}, 1),
	}
}

// Start spawns the worker goroutines. Safe to call once; subsequent calls
// are no-ops.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "worker_count", p.workerCount)
	for i := 0; i < p.workerCount; i++ {
		w := &worker{
			id:           fmt.Sprintf("worker-%d", i),
			pool:         p,
			status:       WorkerStatusIdle,
			lastActivity: time.Now(),
		}
		p.workers = append(p.workers, w)
		p.wg.Add(1)
		go w.run(ctx)
	}
}

// Submit enqueues a job. Jobs run in submission order across the pool.
func (p *Pool) Submit(job Job) {
	p.mu.Lock()
	p.jobs = append(p.jobs, job)
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// Stop signals workers to stop and waits for in-flight jobs to finish.
// Queued jobs that have not started are dropped.
func (p *Pool) Stop() {
	slog.Info("Stopping worker pool gracefully")
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Worker pool stopped gracefully")
}

// Health returns a snapshot of all workers and the queue depth.
func (p *Pool) Health() ([]WorkerHealth, int) {
	p.mu.Lock()
	depth := len(p.jobs)
	p.mu.Unlock()

	health := make([]WorkerHealth, 0, len(p.workers))
	for _, w := range p.workers {
		health = append(health, w.health())
	}
	return health, depth
}

func (p *Pool) dequeue() (Job, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.jobs) == 0 {
		return Job{}, false
	}
	job := p.jobs[0]
	p.jobs = p.jobs[1:]
	// Keep the signal alive while work remains so sibling workers wake too.
	if len(p.jobs) > 0 {
		select {
		case p.notify <- struct{}{}:
		default:
		}
	}
	return job, true
}

type worker struct {
	id   string
	pool *Pool

	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

func (w *worker) health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *worker) run(ctx context.Context) {
	defer w.pool.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.pool.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		case <-w.pool.notify:
		}

		for {
			job, ok := w.pool.dequeue()
			if !ok {
				break
			}
			w.process(ctx, job, log)

			select {
			case <-w.pool.stopCh:
				log.Info("Worker shutting down")
				return
			default:
			}
		}
	}
}

func (w *worker) process(ctx context.Context, job Job, log *slog.Logger) {
	w.mu.Lock()
	w.status = WorkerStatusWorking
	w.currentJobID = job.ID
	w.lastActivity = time.Now()
	w.mu.Unlock()

	log.Info("Processing job", "job_id", job.ID, "kind", job.Kind)
	if err := job.Run(ctx); err != nil {
		log.Error("Job failed", "job_id", job.ID, "kind", job.Kind, "error", err)
	} else {
		log.Info("Job completed", "job_id", job.ID, "kind", job.Kind)
	}

	w.mu.Lock()
	w.status = WorkerStatusIdle
	w.currentJobID = ""
	w.jobsProcessed++
	w.lastActivity = time.Now()
	w.mu.Unlock()
}
