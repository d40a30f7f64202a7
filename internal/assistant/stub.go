package assistant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Stub is an offline stand-in for the hosted API, used by dry runs and
// tests. Runs complete after a fixed number of polls with a canned reply.
type Stub struct {
	// Reply is returned for every question. Empty uses a default.
	Reply string
	// PollsUntilDone is how many status polls a run stays in progress
	// before completing. Zero completes on the first poll.
	PollsUntilDone int

	polls   map[string]int
	replies map[string]string
}

// NewStub creates a stub with a default canned reply.
func NewStub() *Stub {
	return &Stub{
		polls:   make(map[string]int),
		replies: make(map[string]string),
	}
}

func (s *Stub) CreateThread(ctx context.Context) (string, error) {
	return "thread_" + uuid.NewString(), nil
}

func (s *Stub) AddMessage(ctx context.Context, threadID, text string) error {
	if s.replies == nil {
		s.replies = make(map[string]string)
	}
	reply := s.Reply
	if reply == "" {
		reply = fmt.Sprintf("[dry-run] canned reply for thread %s", threadID)
	}
	s.replies[threadID] = reply
	return nil
}

func (s *Stub) CreateRun(ctx context.Context, threadID string) (string, error) {
	return "run_" + uuid.NewString(), nil
}

func (s *Stub) GetRun(ctx context.Context, threadID, runID string) (RunState, error) {
	if s.polls == nil {
		s.polls = make(map[string]int)
	}
	if s.polls[runID] < s.PollsUntilDone {
		s.polls[runID]++
		return RunInProgress, nil
	}
	return RunCompleted, nil
}

func (s *Stub) LatestAssistantMessage(ctx context.Context, threadID string) (string, error) {
	reply, ok := s.replies[threadID]
	if !ok {
		return "", fmt.Errorf("no assistant response found in thread %s", threadID)
	}
	return reply, nil
}
