package store

// AsyncOp is the progress/error pair tracked per long-running operation.
// Each operation owns its own AsyncOp so unrelated operations cannot
// clobber each other's status.
type AsyncOp struct {
	InProgress bool
	Err        string
}

func (op *AsyncOp) start() { op.InProgress = true; op.Err = "" }

func (op *AsyncOp) finish() { op.InProgress = false }

func (op *AsyncOp) fail(msg string) { op.InProgress = false; op.Err = msg }
