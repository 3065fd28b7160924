package storage

import (
	"context"
	"sync"
	"time"

	"github.com/grachmannico95/wallet-import/internal/domain"
)

// MemoryStore keeps import runs and processed event ids in memory.
type MemoryStore struct {
	runs            map[string]*domain.ImportRun
	sessionRuns     map[string][]string
	processedEvents map[string]bool
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:            make(map[string]*domain.ImportRun),
		sessionRuns:     make(map[string][]string),
		processedEvents: make(map[string]bool),
	}
}

func (s *MemoryStore) CreateRun(ctx context.Context, run domain.ImportRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.Status == "" {
		run.Status = domain.RunStatusProcessing
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.Errors = []string{}
	run.Outcomes = []domain.RowOutcome{}

	s.runs[run.ID] = &run
	s.sessionRuns[run.SessionID] = append(s.sessionRuns[run.SessionID], run.ID)

	return nil
}

// GetRun returns a copy, so callers never observe later progress updates mid-read.
func (s *MemoryStore) GetRun(ctx context.Context, runID string) (*domain.ImportRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, exists := s.runs[runID]
	if !exists {
		return nil, domain.ErrRunNotFound
	}

	return copyRun(run), nil
}

func (s *MemoryStore) GetLatestRun(ctx context.Context, sessionID string) (*domain.ImportRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.sessionRuns[sessionID]
	if len(ids) == 0 {
		return nil, domain.ErrRunNotFound
	}

	return copyRun(s.runs[ids[len(ids)-1]]), nil
}

func (s *MemoryStore) UpdateRunProgress(ctx context.Context, runID string, processed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[runID]
	if !exists {
		return domain.ErrRunNotFound
	}

	run.ProcessedRows = processed

	return nil
}

func (s *MemoryStore) CompleteRun(ctx context.Context, runID string, status domain.RunStatus, result domain.RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[runID]
	if !exists {
		return domain.ErrRunNotFound
	}

	now := time.Now()
	run.Status = status
	run.SuccessCount = result.SuccessCount
	run.FailedCount = result.FailedCount
	run.Errors = append([]string{}, result.Errors...)
	run.Outcomes = append([]domain.RowOutcome{}, result.Outcomes...)
	run.FailureReason = result.FailureReason
	run.CompletedAt = &now
	if status == domain.RunStatusCompleted {
		run.ProcessedRows = run.TotalRows
	}

	return nil
}

func (s *MemoryStore) DeleteRuns(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.sessionRuns[sessionID] {
		delete(s.runs, id)
	}
	delete(s.sessionRuns, sessionID)

	return nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}

func copyRun(run *domain.ImportRun) *domain.ImportRun {
	out := *run
	out.Errors = append([]string{}, run.Errors...)
	out.Outcomes = append([]domain.RowOutcome{}, run.Outcomes...)
	if run.CompletedAt != nil {
		completed := *run.CompletedAt
		out.CompletedAt = &completed
	}
	return &out
}
