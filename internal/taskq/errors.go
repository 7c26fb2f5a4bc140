package taskq

import "errors"

// ErrRunnerClosed is returned by Submit after Stop.
var ErrRunnerClosed = errors.New("taskq: runner closed")

// ErrQueueFull is returned when a shard's queue stays full past the
// enqueue timeout. Fire-and-forget callers treat it as a dropped task.
var ErrQueueFull = errors.New("taskq: queue full")
