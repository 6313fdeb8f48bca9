package tools_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/honeycarbs/jobboard/internal/credential"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
)

// fakeStore holds a token until it is cleared
type fakeStore struct {
	mu      sync.Mutex
	token   string
	cleared int
	err     error
}

func (f *fakeStore) Token(context.Context) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.token != ""
}

func (f *fakeStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.token = ""
	f.cleared++
	return nil
}

func (f *fakeStore) clearCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cleared
}

func TestJobsLogout(t *testing.T) {
	store := &fakeStore{token: "stored"}
	src := &stubSource{}
	h := newHarnessWithCredentials(t, src, nil, store, credential.Chain{credential.Static(""), store})

	h.open(t)
	if tok := src.lastToken(); tok != "stored" {
		t.Fatalf("token before logout = %q, want stored", tok)
	}

	res := h.call(t, "jobs_logout", map[string]any{}, nil)
	if !strings.Contains(text(res), "later fetches go out unauthenticated") {
		t.Errorf("result = %q", text(res))
	}
	if store.clearCount() != 1 {
		t.Errorf("cleared = %d, want 1", store.clearCount())
	}

	h.open(t)
	if tok := src.lastToken(); tok != "" {
		t.Errorf("token after logout = %q, want none", tok)
	}
}

func TestJobsLogout_StaticTokenStaysInUse(t *testing.T) {
	store := &fakeStore{token: "stored"}
	src := &stubSource{}
	h := newHarnessWithCredentials(t, src, nil, store, credential.Chain{credential.Static("env"), store})

	res := h.call(t, "jobs_logout", map[string]any{}, nil)
	if !strings.Contains(text(res), "JWT_TOKEN is still configured") {
		t.Errorf("result = %q", text(res))
	}
	if store.clearCount() != 1 {
		t.Errorf("cleared = %d, want 1", store.clearCount())
	}

	h.open(t)
	if tok := src.lastToken(); tok != "env" {
		t.Errorf("token after logout = %q, want env", tok)
	}
}

func TestJobsLogout_StoreError(t *testing.T) {
	h := newHarness(t, &stubSource{}, nil, &fakeStore{err: errors.New("redis down")})

	if msg := h.callErr(t, "jobs_logout", map[string]any{}); !strings.Contains(msg, "redis down") {
		t.Errorf("error = %q", msg)
	}
}

func TestJobsLogout_NoStore(t *testing.T) {
	var store tools.CredentialStore
	h := newHarness(t, &stubSource{}, nil, store)

	res := h.call(t, "jobs_logout", map[string]any{}, nil)
	if !strings.Contains(text(res), "no credential store") {
		t.Errorf("result = %q", text(res))
	}
}
