package importer

import (
	"context"
	"sync/atomic"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/internal/metrics"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"golang.org/x/time/rate"
)

// Progress is reported after every submitted row.
type Progress struct {
	Processed int     `json:"processed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

type ProgressFunc func(Progress)

// Result is the fold of every submission outcome of one run.
type Result struct {
	SuccessCount int
	Outcomes     []domain.RowOutcome
}

func (r Result) with(o domain.RowOutcome) Result {
	next := Result{
		SuccessCount: r.SuccessCount,
		Outcomes:     append(r.Outcomes[:len(r.Outcomes):len(r.Outcomes)], o),
	}
	if o.Status == domain.RowStatusSubmittedOK {
		next.SuccessCount++
	}
	return next
}

// Executor submits candidates to the backend strictly one at a time, in order.
// A failed row is recorded and the run moves on; nothing is retried.
type Executor struct {
	creator domain.TransactionCreator
	limiter *rate.Limiter
	metrics *metrics.Metrics
	logger  *logger.Logger
	running atomic.Bool
}

type ExecutorOption func(*Executor)

// WithLimiter paces submissions. Sessions share one limiter so the backend
// sees a bounded write rate overall.
func WithLimiter(l *rate.Limiter) ExecutorOption {
	return func(e *Executor) {
		e.limiter = l
	}
}

func WithMetrics(m *metrics.Metrics) ExecutorOption {
	return func(e *Executor) {
		e.metrics = m
	}
}

func NewExecutor(creator domain.TransactionCreator, log *logger.Logger, opts ...ExecutorOption) *Executor {
	e := &Executor{
		creator: creator,
		logger:  log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewLimiter builds the shared submission limiter; perSecond <= 0 disables pacing.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

func (e *Executor) Running() bool {
	return e.running.Load()
}

// Run submits candidates in order. It refuses to start while another Run on
// the same executor is active and otherwise always runs to the last row.
func (e *Executor) Run(ctx context.Context, userID string, candidates []domain.Candidate, onProgress ProgressFunc) (Result, error) {
	if !e.running.CompareAndSwap(false, true) {
		return Result{}, domain.ErrImportInProgress
	}
	defer e.running.Store(false)

	e.logger.Info(ctx, "Submitting candidates",
		"count", len(candidates),
	)

	total := len(candidates)
	result := Result{Outcomes: make([]domain.RowOutcome, 0, total)}
	for i, c := range candidates {
		result = result.with(e.submit(ctx, userID, c))

		if onProgress != nil {
			onProgress(Progress{
				Processed: i + 1,
				Total:     total,
				Percent:   float64(i+1) / float64(total) * 100,
			})
		}
	}

	e.logger.Info(ctx, "Submission finished",
		"success_count", result.SuccessCount,
		"failed_count", total-result.SuccessCount,
	)

	return result, nil
}

func (e *Executor) submit(ctx context.Context, userID string, c domain.Candidate) domain.RowOutcome {
	outcome := domain.RowOutcome{RowNumber: c.RowNumber}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			outcome.Status = domain.RowStatusSubmittedFailed
			outcome.Message = "remote error - " + err.Error()
			e.metrics.ObserveRow(outcome.Status)
			return outcome
		}
	}

	id, err := e.creator.CreateTransaction(ctx, userID, c)
	if err != nil {
		e.logger.Warn(ctx, "Failed to create transaction",
			"row", c.RowNumber,
			"error", err,
		)
		outcome.Status = domain.RowStatusSubmittedFailed
		outcome.Message = "remote error - " + err.Error()
	} else {
		e.logger.Debug(ctx, "Transaction created",
			"row", c.RowNumber,
			"transaction_id", id,
		)
		outcome.Status = domain.RowStatusSubmittedOK
		outcome.TransactionID = id
	}

	e.metrics.ObserveRow(outcome.Status)
	return outcome
}
