package taskq

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"
)

func TestSubmitRunsTask(t *testing.T) {
	r := NewRunner(Config{})
	defer r.Stop()

	var ran atomic.Bool
	if err := r.Submit(context.Background(), "k", "test", func(context.Context) error {
		ran.Store(true)
		return nil
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := r.Barrier(context.Background(), "k"); err != nil {
		t.Fatalf("Barrier: %v", err)
	}
	if !ran.Load() {
		t.Fatalf("task never ran")
	}
}

func TestFIFOPerKey(t *testing.T) {
	r := NewRunner(Config{Shards: 4})
	defer r.Stop()

	var mu sync.Mutex
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		if err := r.Submit(context.Background(), "same-key", "seq", func(context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		}); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}
	if err := r.Barrier(context.Background(), "same-key"); err != nil {
		t.Fatalf("Barrier: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestRecoverableErrorRetried(t *testing.T) {
	r := NewRunner(Config{BaseBackoff: time.Millisecond, MaxAttempts: 3})
	defer r.Stop()

	var attempts atomic.Int32
	_ = r.Submit(context.Background(), "k", "retry", func(context.Context) error {
		if attempts.Add(1) < 3 {
			return httperr.FromResponse("op", http.StatusInternalServerError, nil)
		}
		return nil
	})
	_ = r.Barrier(context.Background(), "k")
	if got := attempts.Load(); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
}

func TestIrrecoverableErrorNotRetried(t *testing.T) {
	r := NewRunner(Config{BaseBackoff: time.Millisecond})
	defer r.Stop()

	var attempts atomic.Int32
	_ = r.Submit(context.Background(), "k", "fail", func(context.Context) error {
		attempts.Add(1)
		return httperr.FromResponse("op", http.StatusBadRequest, nil)
	})
	_ = r.Barrier(context.Background(), "k")
	if got := attempts.Load(); got != 1 {
		t.Fatalf("attempts = %d, want 1", got)
	}
}

func TestPanicContained(t *testing.T) {
	r := NewRunner(Config{})
	defer r.Stop()

	_ = r.Submit(context.Background(), "k", "boom", func(context.Context) error {
		panic("boom")
	})
	// The worker must survive and still run later tasks on the shard.
	var ran atomic.Bool
	_ = r.Submit(context.Background(), "k", "after", func(context.Context) error {
		ran.Store(true)
		return nil
	})
	_ = r.Barrier(context.Background(), "k")
	if !ran.Load() {
		t.Fatalf("worker died after panic")
	}
}

func TestSubmitAfterStop(t *testing.T) {
	r := NewRunner(Config{})
	r.Stop()
	err := r.Submit(context.Background(), "k", "late", func(context.Context) error { return nil })
	if !errors.Is(err, ErrRunnerClosed) {
		t.Fatalf("err = %v, want ErrRunnerClosed", err)
	}
}

func TestStopDrainsQueuedTasks(t *testing.T) {
	r := NewRunner(Config{Shards: 1, QueueSize: 16})

	var ran atomic.Int32
	for i := 0; i < 8; i++ {
		_ = r.Submit(context.Background(), "k", "drain", func(context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	r.Stop()
	if got := ran.Load(); got != 8 {
		t.Fatalf("ran = %d, want 8", got)
	}
}

func TestCanceledContextSkipsTask(t *testing.T) {
	r := NewRunner(Config{Shards: 1})
	defer r.Stop()

	// Park the worker so the canceled task sits queued until its context is
	// already dead when the worker picks it up.
	release := make(chan struct{})
	_ = r.Submit(context.Background(), "k", "hold", func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	if err := r.Submit(ctx, "k", "canceled", func(context.Context) error {
		ran.Store(true)
		return nil
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	cancel()
	close(release)
	_ = r.Barrier(context.Background(), "k")
	if ran.Load() {
		t.Fatalf("canceled task should have been skipped")
	}
}

func TestStopIdempotent(t *testing.T) {
	r := NewRunner(Config{})
	r.Stop()
	r.Stop()
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MEALRUSH_TASKS_SHARDS", "8")
	t.Setenv("MEALRUSH_TASKS_QUEUE_SIZE", "256")
	t.Setenv("MEALRUSH_TASKS_ENQUEUE_TIMEOUT", "250ms")
	t.Setenv("MEALRUSH_TASKS_MAX_ATTEMPTS", "7")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Shards != 8 || cfg.QueueSize != 256 {
		t.Fatalf("unexpected Shards/QueueSize: %+v", cfg)
	}
	if cfg.EnqueueTimeout != 250*time.Millisecond || cfg.MaxAttempts != 7 {
		t.Fatalf("unexpected timeouts: %+v", cfg)
	}
}
