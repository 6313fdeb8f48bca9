package mcp

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobboard/internal/controller"
	"github.com/honeycarbs/jobboard/internal/credential"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Sessions owns the controllers behind MCP tool calls. List controllers
// are keyed by a generated browse session id, detail controllers by job id.
type Sessions struct {
	source job.Source
	creds  credential.Provider
	logger *logging.Logger
	opts   []controller.Option

	mu      sync.Mutex
	lists   map[string]*controller.List
	details map[string]*controller.Detail
	closed  bool
}

func NewSessions(source job.Source, creds credential.Provider, logger *logging.Logger, opts ...controller.Option) *Sessions {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Sessions{
		source:  source,
		creds:   creds,
		logger:  logger.Named("sessions"),
		opts:    append([]controller.Option{controller.WithLogger(logger)}, opts...),
		lists:   make(map[string]*controller.List),
		details: make(map[string]*controller.Detail),
	}
}

// OpenList creates a List controller under a new session id. The caller
// initializes it.
func (s *Sessions) OpenList() (string, *controller.List, error) {
	l, err := controller.NewList(s.source, s.creds, s.opts...)
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		l.Dispose()
		return "", nil, fmt.Errorf("sessions: closed")
	}

	id := uuid.NewString()
	s.lists[id] = l
	s.logger.Info("list session opened", "session_id", id, "open", len(s.lists))
	return id, l, nil
}

func (s *Sessions) List(id string) (*controller.List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[id]
	return l, ok
}

// CloseList disposes and forgets a list session
func (s *Sessions) CloseList(id string) bool {
	s.mu.Lock()
	l, ok := s.lists[id]
	delete(s.lists, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	l.Dispose()
	s.logger.Info("list session closed", "session_id", id)
	return true
}

// OpenDetail creates a Detail controller for jobID, disposing any previous
// one for the same job. The caller initializes it.
func (s *Sessions) OpenDetail(jobID string) (*controller.Detail, error) {
	d, err := controller.NewDetail(jobID, s.source, s.creds, s.opts...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		d.Dispose()
		return nil, fmt.Errorf("sessions: closed")
	}
	prev := s.details[jobID]
	s.details[jobID] = d
	s.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}
	return d, nil
}

func (s *Sessions) Detail(jobID string) (*controller.Detail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.details[jobID]
	return d, ok
}

// CloseDetail disposes and forgets the detail controller for jobID
func (s *Sessions) CloseDetail(jobID string) bool {
	s.mu.Lock()
	d, ok := s.details[jobID]
	delete(s.details, jobID)
	s.mu.Unlock()

	if !ok {
		return false
	}
	d.Dispose()
	s.logger.Info("detail closed", "job_id", jobID)
	return true
}

// DisposeAll disposes every controller. Later opens fail.
func (s *Sessions) DisposeAll() {
	s.mu.Lock()
	lists, details := s.lists, s.details
	s.lists = make(map[string]*controller.List)
	s.details = make(map[string]*controller.Detail)
	s.closed = true
	s.mu.Unlock()

	for _, l := range lists {
		l.Dispose()
	}
	for _, d := range details {
		d.Dispose()
	}
	s.logger.Info("sessions disposed", "lists", len(lists), "details", len(details))
}
