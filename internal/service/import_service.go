package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/internal/eventbus"
	"github.com/grachmannico95/wallet-import/internal/importer"
	"github.com/grachmannico95/wallet-import/internal/metrics"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"golang.org/x/time/rate"
)

type ImportService interface {
	CreateSession(ctx context.Context, userID, fileName string, reader io.Reader) (*SessionView, error)
	GetSession(ctx context.Context, userID, sessionID string) (*SessionView, error)
	SetMapping(ctx context.Context, userID, sessionID string, field importer.Field, header string) (*SessionView, error)
	ResetMapping(ctx context.Context, userID, sessionID string) (*SessionView, error)
	StartRun(ctx context.Context, userID, sessionID string) (*domain.ImportRun, error)
	GetRunStatus(ctx context.Context, userID, sessionID string) (*RunStatus, error)
	ExportOutcomes(ctx context.Context, userID, sessionID string, w io.Writer) error
	DeleteSession(ctx context.Context, userID, sessionID string) error
	ExpireIdle(ctx context.Context, ttl time.Duration) int
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	Shutdown(ctx context.Context) error
}

// SessionView is what clients see of a session.
type SessionView struct {
	importer.View
	LastRun *RunStatus `json:"last_run,omitempty"`
}

// RunStatus is a run as reported to clients, with the error list capped.
type RunStatus struct {
	RunID           string           `json:"run_id"`
	Status          domain.RunStatus `json:"status"`
	Processed       int              `json:"processed"`
	Total           int              `json:"total"`
	Percent         float64          `json:"percent"`
	SuccessCount    int              `json:"success_count"`
	FailedCount     int              `json:"failed_count"`
	Errors          []string         `json:"errors"`
	RemainingErrors int              `json:"remaining_errors"`
	FailureReason   string           `json:"failure_reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
}

type importService struct {
	repo    domain.Repository
	backend domain.Backend
	bus     eventbus.EventBus
	logger  *logger.Logger
	metrics *metrics.Metrics
	limiter *rate.Limiter

	previewRows       int
	errorDisplayLimit int

	mu       sync.RWMutex
	sessions map[string]*importer.Session
	runs     sync.WaitGroup
}

type Option func(*importService)

func WithPreviewRows(n int) Option {
	return func(s *importService) {
		if n > 0 {
			s.previewRows = n
		}
	}
}

func WithErrorDisplayLimit(n int) Option {
	return func(s *importService) {
		s.errorDisplayLimit = n
	}
}

// WithRateLimiter paces submissions across every session.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(s *importService) {
		s.limiter = l
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *importService) {
		s.metrics = m
	}
}

func NewImportService(repo domain.Repository, backend domain.Backend, bus eventbus.EventBus, log *logger.Logger, opts ...Option) ImportService {
	s := &importService{
		repo:              repo,
		backend:           backend,
		bus:               bus,
		logger:            log,
		previewRows:       importer.DefaultPreviewLimit,
		errorDisplayLimit: importer.DefaultErrorDisplayLimit,
		sessions:          make(map[string]*importer.Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *importService) CreateSession(ctx context.Context, userID, fileName string, reader io.Reader) (*SessionView, error) {
	sessionID := uuid.New().String()

	ctx = logger.WithSessionID(ctx, sessionID)
	ctx = logger.WithUserID(ctx, userID)

	executor := importer.NewExecutor(s.backend, s.logger,
		importer.WithLimiter(s.limiter),
		importer.WithMetrics(s.metrics),
	)
	session := importer.NewSession(sessionID, userID, executor, importer.WithPreviewLimit(s.previewRows))

	s.logger.Info(ctx, "Parsing uploaded file",
		"file_name", fileName,
	)

	if err := session.Parse(fileName, reader); err != nil {
		s.logger.Warn(ctx, "Failed to parse file",
			"file_name", fileName,
			"error", err,
		)
		return nil, err
	}

	if err := session.LoadReferences(ctx, s.backend); err != nil {
		s.logger.Error(ctx, "Failed to load categories and wallets",
			"error", err,
		)
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()
	s.metrics.SessionOpened()

	view := session.View()
	s.logger.Info(ctx, "Import session created",
		"total_rows", view.TotalRows,
		"missing_required", view.MissingRequired,
	)

	return &SessionView{View: view}, nil
}

func (s *importService) GetSession(ctx context.Context, userID, sessionID string) (*SessionView, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

func (s *importService) SetMapping(ctx context.Context, userID, sessionID string, field importer.Field, header string) (*SessionView, error) {
	ctx = logger.WithSessionID(ctx, sessionID)

	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.SetMapping(field, header); err != nil {
		s.logger.Debug(ctx, "Mapping rejected",
			"field", field,
			"header", header,
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Mapping updated",
		"field", field,
		"header", header,
	)

	return s.view(ctx, session)
}

func (s *importService) ResetMapping(ctx context.Context, userID, sessionID string) (*SessionView, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.ResetMapping(); err != nil {
		return nil, err
	}

	return s.view(ctx, session)
}

// StartRun validates the whole file and submits the valid rows in the
// background. Precondition failures are returned before anything is submitted.
func (s *importService) StartRun(ctx context.Context, userID, sessionID string) (*domain.ImportRun, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	ctx = logger.WithUserID(ctx, userID)

	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	run, err := session.Start()
	if err != nil {
		s.logger.Info(ctx, "Import not started",
			"error", err,
		)
		return nil, err
	}

	importRun := domain.ImportRun{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    userID,
		Status:    domain.RunStatusProcessing,
		TotalRows: run.Candidates(),
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateRun(ctx, importRun); err != nil {
		run.Release()
		s.logger.Error(ctx, "Failed to create run",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Import run started",
		"run_id", importRun.ID,
		"file_rows", run.TotalRows(),
		"candidates", run.Candidates(),
	)

	s.runs.Add(1)
	go func() {
		defer s.runs.Done()
		s.execute(context.WithoutCancel(ctx), session, run, importRun)
	}()

	return &importRun, nil
}

func (s *importService) execute(ctx context.Context, session *importer.Session, run *importer.Run, importRun domain.ImportRun) {
	started := time.Now()

	for _, o := range run.Validation().Invalid() {
		s.metrics.ObserveRow(o.Status)
	}

	report, err := run.Execute(ctx, func(p importer.Progress) {
		if err := s.repo.UpdateRunProgress(ctx, importRun.ID, p.Processed); err != nil {
			s.logger.Warn(ctx, "Failed to update run progress",
				"run_id", importRun.ID,
				"error", err,
			)
		}
	})

	status := domain.RunStatusCompleted
	var result domain.RunResult
	if err != nil {
		status = domain.RunStatusFailed
		result.FailureReason = err.Error()
		s.logger.Error(ctx, "Import run failed",
			"run_id", importRun.ID,
			"error", err,
		)
	} else {
		result = domain.RunResult{
			SuccessCount: report.SuccessCount,
			FailedCount:  report.FailedCount,
			Errors:       report.Errors,
			Outcomes:     report.Outcomes,
		}
		s.logger.Info(ctx, "Import run completed",
			"run_id", importRun.ID,
			"success_count", report.SuccessCount,
			"failed_count", report.FailedCount,
		)
	}

	if err := s.repo.CompleteRun(ctx, importRun.ID, status, result); err != nil {
		s.logger.Error(ctx, "Failed to complete run",
			"run_id", importRun.ID,
			"error", err,
		)
	}
	s.metrics.ObserveRun(status, time.Since(started))

	if s.bus == nil {
		return
	}

	view := session.View()
	event := eventbus.Event{
		ID:        uuid.New().String(),
		Type:      eventbus.EventTypeImportCompleted,
		Timestamp: time.Now(),
		Payload: eventbus.ImportCompletedEvent{
			RunID:        importRun.ID,
			SessionID:    importRun.SessionID,
			UserID:       importRun.UserID,
			FileName:     view.FileName,
			TotalRows:    run.TotalRows(),
			SuccessCount: result.SuccessCount,
			FailedCount:  result.FailedCount,
			Failed:       status == domain.RunStatusFailed,
			Reason:       result.FailureReason,
		},
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn(ctx, "Failed to publish import completed event",
			"run_id", importRun.ID,
			"error", err,
		)
	}
}

func (s *importService) GetRunStatus(ctx context.Context, userID, sessionID string) (*RunStatus, error) {
	if _, err := s.session(userID, sessionID); err != nil {
		return nil, err
	}

	run, err := s.repo.GetLatestRun(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.runStatus(run), nil
}

// ExportOutcomes writes every row outcome of the latest finished run as CSV.
func (s *importService) ExportOutcomes(ctx context.Context, userID, sessionID string, w io.Writer) error {
	if _, err := s.session(userID, sessionID); err != nil {
		return err
	}

	run, err := s.repo.GetLatestRun(ctx, sessionID)
	if err != nil {
		return err
	}
	if run.Status == domain.RunStatusProcessing {
		return domain.ErrImportInProgress
	}

	return importer.WriteOutcomesCSV(w, run.Outcomes)
}

func (s *importService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	ctx = logger.WithSessionID(ctx, sessionID)

	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	if err := session.Close(); err != nil {
		return err
	}

	s.remove(ctx, sessionID, false)
	s.logger.Info(ctx, "Import session closed")

	return nil
}

// ExpireIdle drops sessions unused for longer than ttl and returns how many
// were removed. Running sessions are kept.
func (s *importService) ExpireIdle(ctx context.Context, ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.RLock()
	var expired []string
	for id, session := range s.sessions {
		if session.IdleSince().Before(cutoff) && session.Close() == nil {
			expired = append(expired, id)
		}
	}
	s.mu.RUnlock()

	for _, id := range expired {
		s.remove(logger.WithSessionID(ctx, id), id, true)
	}

	if len(expired) > 0 {
		s.logger.Info(ctx, "Expired idle import sessions",
			"count", len(expired),
		)
	}

	return len(expired)
}

func (s *importService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.backend.ListNotifications(ctx, userID)
}

// Shutdown waits for running imports to finish.
func (s *importService) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.runs.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *importService) session(userID, sessionID string) (*importer.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.UserID() != userID {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *importService) remove(ctx context.Context, sessionID string, expired bool) {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return
	}
	if err := s.repo.DeleteRuns(ctx, sessionID); err != nil {
		s.logger.Warn(ctx, "Failed to delete runs",
			"error", err,
		)
	}
	s.metrics.SessionClosed(expired)
}

func (s *importService) view(ctx context.Context, session *importer.Session) (*SessionView, error) {
	view := &SessionView{View: session.View()}

	run, err := s.repo.GetLatestRun(ctx, session.ID())
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
	case err != nil:
		return nil, err
	default:
		view.LastRun = s.runStatus(run)
	}

	return view, nil
}

func (s *importService) runStatus(run *domain.ImportRun) *RunStatus {
	shown, remaining := importer.CapErrors(run.Errors, s.errorDisplayLimit)
	if shown == nil {
		shown = []string{}
	}

	return &RunStatus{
		RunID:           run.ID,
		Status:          run.Status,
		Processed:       run.ProcessedRows,
		Total:           run.TotalRows,
		Percent:         run.Percent(),
		SuccessCount:    run.SuccessCount,
		FailedCount:     run.FailedCount,
		Errors:          shown,
		RemainingErrors: remaining,
		FailureReason:   run.FailureReason,
		CreatedAt:       run.CreatedAt,
		CompletedAt:     run.CompletedAt,
	}
}
