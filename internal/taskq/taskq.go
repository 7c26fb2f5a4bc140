// Package taskq runs fire-and-forget work off the caller's path: push
// device registration after login, token re-submission, anything the UI
// must never block on. Tasks are partitioned by key so work for one key
// stays FIFO while different keys run in parallel. Recoverable failures
// (network, timeout, 5xx) are retried with exponential backoff; 4xx
// failures are dropped after a single attempt.
package taskq

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"
)

// Task is a unit of background work.
type Task func(ctx context.Context) error

type queuedTask struct {
	ctx  context.Context
	name string
	task Task
}

// Runner executes Tasks on worker goroutines partitioned by a stable hash
// of the key. FIFO ordering holds within a shard; callers must not submit
// concurrently for the same key if they rely on it.
type Runner struct {
	cfg    Config
	queues []chan queuedTask

	done   chan struct{}
	closed uint32

	wg sync.WaitGroup
}

// NewRunner starts the shard workers. Zero-value config fields take the
// defaults from DefaultConfig.
func NewRunner(cfg Config) *Runner {
	cfg = cfg.withDefaults()
	r := &Runner{
		cfg:    cfg,
		queues: make([]chan queuedTask, cfg.Shards),
		done:   make(chan struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queuedTask, cfg.QueueSize)
		r.queues[i] = ch
		r.wg.Add(1)
		go r.runWorker(i, ch)
	}
	return r
}

// Submit enqueues a task for the shard derived from key. It returns
// ErrRunnerClosed after Stop, ErrQueueFull when the shard's queue stays
// full past the enqueue timeout, or ctx.Err() if the caller's context
// expires first. The task's eventual failure is never reported back;
// discard-on-error is the contract.
func (r *Runner) Submit(ctx context.Context, key, name string, task Task) error {
	if atomic.LoadUint32(&r.closed) == 1 {
		return ErrRunnerClosed
	}
	select {
	case <-r.done:
		return ErrRunnerClosed
	default:
	}

	shard := r.shardFor(key)
	ch := r.queues[shard]
	qt := queuedTask{ctx: ctx, name: name, task: task}

	timer := time.NewTimer(r.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- qt:
		submissionsTotal.WithLabelValues(name).Inc()
		return nil
	case <-r.done:
		return ErrRunnerClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		queueFullTotal.WithLabelValues(name).Inc()
		return ErrQueueFull
	}
}

// Barrier waits until every task previously submitted for key has run, by
// enqueueing a no-op and waiting for it. Test hook and shutdown aid.
func (r *Runner) Barrier(ctx context.Context, key string) error {
	ran := make(chan struct{})
	if err := r.Submit(ctx, key, "barrier", func(context.Context) error {
		close(ran)
		return nil
	}); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ran:
		return nil
	}
}

// Stop drains every shard's queue and waits for workers to exit.
// Idempotent and safe for concurrent use.
func (r *Runner) Stop() {
	if !atomic.CompareAndSwapUint32(&r.closed, 0, 1) {
		return
	}
	close(r.done)
	r.wg.Wait()
}

func (r *Runner) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % r.cfg.Shards
}

func (r *Runner) runWorker(idx int, ch <-chan queuedTask) {
	defer r.wg.Done()

	for {
		select {
		case qt := <-ch:
			r.runTask(qt)
		case <-r.done:
			// Drain what is already queued, preserving FIFO, then exit.
			for {
				select {
				case qt := <-ch:
					r.runTask(qt)
				default:
					return
				}
			}
		}
	}
}

// runTask executes one task with backoff retry for recoverable failures.
// Panics are contained so a bad task cannot take down the worker.
func (r *Runner) runTask(qt queuedTask) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("task", qt.name).Interface("panic", rec).
				Msg("taskq: task panicked")
			failuresTotal.WithLabelValues(qt.name).Inc()
		}
	}()

	if qt.task == nil {
		return
	}
	if err := qt.ctx.Err(); err != nil {
		return // caller gave up before the task was picked up
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = r.cfg.MaxInterval
	exp.Reset()

	attempts := 0
	for {
		start := time.Now()
		err := qt.task(qt.ctx)
		runDuration.WithLabelValues(qt.name).Observe(time.Since(start).Seconds())
		if err == nil {
			return
		}
		if !httperr.Recoverable(err) {
			log.Warn().Err(err).Str("task", qt.name).Msg("taskq: task failed, not retrying")
			failuresTotal.WithLabelValues(qt.name).Inc()
			return
		}
		attempts++
		if attempts >= r.cfg.MaxAttempts {
			log.Warn().Err(err).Str("task", qt.name).Int("attempts", attempts).
				Msg("taskq: task failed, retries exhausted")
			failuresTotal.WithLabelValues(qt.name).Inc()
			return
		}
		select {
		case <-time.After(exp.NextBackOff()):
		case <-r.done:
			return
		case <-qt.ctx.Done():
			return
		}
	}
}
