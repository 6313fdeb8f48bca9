package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/honeycarbs/jobboard/pkg/jobsapi"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

const defaultTimeout = 10 * time.Second

// State is a consistent copy of a tracker. Data is shared with the tracker
// and must be treated as read-only.
type State[T any] struct {
	Status  Status
	Data    T
	HasData bool   // Data came from a successful fetch
	Seq     uint64 // latest issued sequence number
	Err     error  // cause of the current Failure
}

// Tracker owns status, data and sequencing for one query site
type Tracker[T any] struct {
	logger  *logging.Logger
	timeout time.Duration

	mu       sync.Mutex
	root     context.Context
	stop     context.CancelFunc
	cancel   context.CancelFunc // in-flight fetch
	status   Status
	data     T
	hasData  bool
	seq      uint64
	err      error
	disposed bool
}

// NewTracker creates an Idle tracker. A non-positive timeout selects the
// default of 10s.
func NewTracker[T any](logger *logging.Logger, timeout time.Duration) *Tracker[T] {
	if logger == nil {
		logger = logging.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	root, stop := context.WithCancel(context.Background())
	return &Tracker[T]{
		logger:  logger,
		timeout: timeout,
		root:    root,
		stop:    stop,
	}
}

// Handle follows one issued fetch
type Handle struct {
	seq  uint64
	done chan struct{}
}

func (h *Handle) Seq() uint64 { return h.seq }

// Done is closed once the fetch has completed and its result was applied
// or discarded
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the fetch completes or ctx ends
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func closedHandle(seq uint64) *Handle {
	h := &Handle{seq: seq, done: make(chan struct{})}
	close(h.done)
	return h
}

// Start issues a new fetch. The previous in-flight fetch, if any, is
// cancelled and its result will be discarded whatever it turns out to be.
func (t *Tracker[T]) Start(run func(ctx context.Context) (T, error)) *Handle {
	t.mu.Lock()
	if t.disposed {
		seq := t.seq
		t.mu.Unlock()
		t.logger.Debug("fetch ignored after dispose", "seq", seq)
		return closedHandle(seq)
	}

	t.seq++
	seq := t.seq
	t.status = InProgress
	t.err = nil
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithTimeout(t.root, t.timeout)
	t.cancel = cancel
	t.mu.Unlock()

	h := &Handle{seq: seq, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer cancel()

		data, err := run(ctx)
		t.complete(seq, data, err)
	}()

	return h
}

func (t *Tracker[T]) complete(seq uint64, data T, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed || seq != t.seq {
		t.logger.Debug("discarding stale completion", "seq", seq, "latest", t.seq, "disposed", t.disposed, "failed", err != nil)
		return
	}

	t.cancel = nil
	if err != nil {
		t.status = Failure
		t.err = err
		t.logger.Warn("fetch failed", "seq", seq, "kind", jobsapi.KindOf(err).String(), "err", err)
		return
	}

	t.status = Success
	t.data = data
	t.hasData = true
	t.logger.Debug("fetch succeeded", "seq", seq)
}

// Reset returns the tracker to Idle and drops data. The sequence counter
// keeps counting so completions from before the reset stay stale.
func (t *Tracker[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed {
		return
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	// invalidate anything still in flight
	t.seq++

	var zero T
	t.status = Idle
	t.data = zero
	t.hasData = false
	t.err = nil
}

// Dispose cancels in-flight work. Later completions and Start calls are
// ignored.
func (t *Tracker[T]) Dispose() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed {
		return
	}
	t.disposed = true
	t.stop()
	t.cancel = nil
}

func (t *Tracker[T]) Disposed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disposed
}

func (t *Tracker[T]) State() State[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	return State[T]{
		Status:  t.status,
		Data:    t.data,
		HasData: t.hasData,
		Seq:     t.seq,
		Err:     t.err,
	}
}
