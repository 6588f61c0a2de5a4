// Package worker prefetches audio track metadata in the background.
package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/services"
)

// TrackSink receives resolved tracks.
type TrackSink interface {
	CacheTrack(school string, track domain.Track)
}

// Pool fetches tracks with a fixed number of workers.
type Pool struct {
	provider ports.TrackProvider
	sink     TrackSink
	timeout  time.Duration
	jobs     chan services.TrackJob
	wg       sync.WaitGroup
}

// NewPool creates a pool with the given queue size. Each fetch is bounded by
// timeout.
func NewPool(provider ports.TrackProvider, sink TrackSink, queueSize int, timeout time.Duration) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Pool{
		provider: provider,
		sink:     sink,
		timeout:  timeout,
		jobs:     make(chan services.TrackJob, queueSize),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if ctx.Err() != nil {
					continue
				}
				p.processJob(ctx, job)
			}
		}()
	}
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a job without blocking. It reports false when the queue is
// full and the job was dropped.
func (p *Pool) Submit(job services.TrackJob) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		log.Printf("WARN worker: dropping track job for %s", job.School)
		return false
	}
}

func (p *Pool) processJob(ctx context.Context, job services.TrackJob) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	track, err := p.provider.GetTrack(ctx, job.TrackID)
	if err != nil {
		log.Printf("WARN worker: failed to fetch track %s for %s: %v", job.TrackID, job.School, err)
		return
	}
	p.sink.CacheTrack(job.School, track)
}
