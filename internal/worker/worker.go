package worker

import (
	"log/slog"
	"sync"

	"admin-dashboard/internal/logging"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	// Stop waits for queued tasks to finish. Submit must not be called
	// afterwards.
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1. A panicking
// task is logged and does not take its worker down.
func NewPool(n int, logger *slog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n), logger: logging.OrNop(logger)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs   chan Task
	wg     sync.WaitGroup
	logger *slog.Logger
}

func (p *pool) loop() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(job)
	}
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", "panic", r)
		}
	}()
	job()
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
