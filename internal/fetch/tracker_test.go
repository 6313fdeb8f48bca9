package fetch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/honeycarbs/jobboard/internal/fetch"
	"github.com/honeycarbs/jobboard/pkg/jobsapi"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

type outcome struct {
	data string
	err  error
}

// gated returns a run func that blocks until a value is sent on the
// returned channel. It ignores cancellation to model a response that
// arrives after being superseded.
func gated() (func(context.Context) (string, error), chan<- outcome) {
	ch := make(chan outcome, 1)
	return func(context.Context) (string, error) {
		o := <-ch
		return o.data, o.err
	}, ch
}

func wait(t *testing.T, h *fetch.Handle) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("fetch %d did not complete: %v", h.Seq(), err)
	}
}

// ── Status ────────────────────────────────────────────────────────────────

func TestStatusString(t *testing.T) {
	cases := map[fetch.Status]string{
		fetch.Idle:       "IDLE",
		fetch.InProgress: "IN_PROGRESS",
		fetch.Success:    "SUCCESS",
		fetch.Failure:    "FAILURE",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
	if fetch.Idle.Settled() || fetch.InProgress.Settled() || !fetch.Success.Settled() || !fetch.Failure.Settled() {
		t.Error("Settled() mismatch")
	}
}

// ── Lifecycle ─────────────────────────────────────────────────────────────

func TestTracker_StartsIdle(t *testing.T) {
	tr := fetch.NewTracker[string](nil, 0)
	st := tr.State()
	if st.Status != fetch.Idle || st.HasData || st.Seq != 0 {
		t.Errorf("initial state = %+v", st)
	}
}

func TestTracker_SuccessThenFailureKeepsData(t *testing.T) {
	tr := fetch.NewTracker[string](nil, time.Second)

	run, gate := gated()
	h := tr.Start(run)
	if st := tr.State(); st.Status != fetch.InProgress {
		t.Fatalf("status after Start = %s, want IN_PROGRESS", st.Status)
	}
	gate <- outcome{data: "page-1"}
	wait(t, h)

	st := tr.State()
	if st.Status != fetch.Success || st.Data != "page-1" || !st.HasData {
		t.Fatalf("after success state = %+v", st)
	}

	boom := errors.New("boom")
	run, gate = gated()
	h = tr.Start(run)
	gate <- outcome{err: boom}
	wait(t, h)

	st = tr.State()
	if st.Status != fetch.Failure {
		t.Fatalf("status = %s, want FAILURE", st.Status)
	}
	if !errors.Is(st.Err, boom) {
		t.Errorf("Err = %v, want boom", st.Err)
	}
	if st.Data != "page-1" || !st.HasData {
		t.Errorf("failure corrupted previous data: %+v", st)
	}
}

// ── Stale completions ─────────────────────────────────────────────────────

func TestTracker_LatestIssuedWins(t *testing.T) {
	tr := fetch.NewTracker[string](nil, time.Second)

	runOld, gateOld := gated()
	runNew, gateNew := gated()
	hOld := tr.Start(runOld)
	hNew := tr.Start(runNew)
	if hNew.Seq() <= hOld.Seq() {
		t.Fatalf("sequence not increasing: %d then %d", hOld.Seq(), hNew.Seq())
	}

	// newer resolves first, older arrives afterwards
	gateNew <- outcome{data: "new"}
	wait(t, hNew)
	gateOld <- outcome{data: "old"}
	wait(t, hOld)

	st := tr.State()
	if st.Status != fetch.Success || st.Data != "new" {
		t.Errorf("state = %+v, want SUCCESS with new data", st)
	}
}

func TestTracker_StaleFailureIgnored(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := fetch.NewTracker[string](logging.NewWithCore(core), time.Second)

	runOld, gateOld := gated()
	runNew, gateNew := gated()
	hOld := tr.Start(runOld)
	hNew := tr.Start(runNew)

	gateNew <- outcome{data: "fresh"}
	wait(t, hNew)
	gateOld <- outcome{err: errors.New("late failure")}
	wait(t, hOld)

	st := tr.State()
	if st.Status != fetch.Success || st.Data != "fresh" || st.Err != nil {
		t.Errorf("stale failure changed state: %+v", st)
	}
	if logs.FilterMessage("discarding stale completion").Len() != 1 {
		t.Errorf("expected one stale-discard log entry, got %d", logs.FilterMessage("discarding stale completion").Len())
	}
}

func TestTracker_StaleWhileNewerInFlight(t *testing.T) {
	tr := fetch.NewTracker[string](nil, time.Second)

	runOld, gateOld := gated()
	runNew, gateNew := gated()
	hOld := tr.Start(runOld)
	hNew := tr.Start(runNew)

	gateOld <- outcome{data: "old"}
	wait(t, hOld)
	if st := tr.State(); st.Status != fetch.InProgress || st.HasData {
		t.Errorf("old completion applied while newer in flight: %+v", st)
	}

	gateNew <- outcome{err: errors.New("nope")}
	wait(t, hNew)
	if st := tr.State(); st.Status != fetch.Failure || st.HasData {
		t.Errorf("state = %+v, want FAILURE without data", st)
	}
}

func TestTracker_SupersededFetchIsCancelled(t *testing.T) {
	tr := fetch.NewTracker[string](nil, time.Second)

	cancelled := make(chan struct{})
	hOld := tr.Start(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		close(cancelled)
		return "", ctx.Err()
	})
	run, gate := gated()
	hNew := tr.Start(run)

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded fetch was not cancelled")
	}
	wait(t, hOld)

	gate <- outcome{data: "ok"}
	wait(t, hNew)
	if st := tr.State(); st.Status != fetch.Success {
		t.Errorf("status = %s, want SUCCESS", st.Status)
	}
}

// ── Timeout ───────────────────────────────────────────────────────────────

func TestTracker_TimeoutIsTransportFailure(t *testing.T) {
	tr := fetch.NewTracker[string](nil, 20*time.Millisecond)

	h := tr.Start(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	wait(t, h)

	st := tr.State()
	if st.Status != fetch.Failure {
		t.Fatalf("status = %s, want FAILURE", st.Status)
	}
	if !errors.Is(st.Err, context.DeadlineExceeded) {
		t.Errorf("Err = %v, want deadline exceeded", st.Err)
	}
	if jobsapi.KindOf(st.Err) != jobsapi.KindTransport {
		t.Errorf("kind = %s, want transport_error", jobsapi.KindOf(st.Err))
	}
}

// ── Reset / Dispose ───────────────────────────────────────────────────────

func TestTracker_ResetInvalidatesInFlight(t *testing.T) {
	tr := fetch.NewTracker[string](nil, time.Second)

	run, gate := gated()
	h := tr.Start(run)
	tr.Reset()

	gate <- outcome{data: "late"}
	wait(t, h)

	if st := tr.State(); st.Status != fetch.Idle || st.HasData {
		t.Errorf("state after reset = %+v, want IDLE without data", st)
	}
}

func TestTracker_DisposeIgnoresCompletions(t *testing.T) {
	tr := fetch.NewTracker[string](nil, time.Second)

	run, gate := gated()
	h := tr.Start(run)
	tr.Dispose()
	tr.Dispose()

	gate <- outcome{data: "late"}
	wait(t, h)

	if st := tr.State(); st.Status != fetch.InProgress || st.HasData {
		t.Errorf("completion applied after dispose: %+v", st)
	}
	if !tr.Disposed() {
		t.Error("Disposed() = false")
	}

	called := false
	after := tr.Start(func(context.Context) (string, error) {
		called = true
		return "", nil
	})
	wait(t, after)
	if called {
		t.Error("Start ran after dispose")
	}
}
