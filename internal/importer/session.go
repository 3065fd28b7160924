package importer

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grachmannico95/wallet-import/internal/domain"
)

// Session holds the state of one import from upload to completion: the
// reference snapshot, the parsed file, the current mapping and the last report.
type Session struct {
	id           string
	userID       string
	executor     *Executor
	previewLimit int
	createdAt    time.Time

	mu         sync.RWMutex
	refs       *References
	refErr     error
	file       *File
	mapping    ColumnMapping
	preview    []PreviewRow
	lastReport *Report
	touched    time.Time

	running atomic.Bool
}

type SessionOption func(*Session)

func WithPreviewLimit(limit int) SessionOption {
	return func(s *Session) {
		if limit > 0 {
			s.previewLimit = limit
		}
	}
}

func NewSession(id, userID string, executor *Executor, opts ...SessionOption) *Session {
	now := time.Now()
	s := &Session{
		id:           id,
		userID:       userID,
		executor:     executor,
		previewLimit: DefaultPreviewLimit,
		createdAt:    now,
		touched:      now,
		mapping:      ColumnMapping{}.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) UserID() string { return s.userID }

// LoadReferences takes the category and wallet snapshot used by every later
// validation. A failed load leaves the session unable to import.
func (s *Session) LoadReferences(ctx context.Context, source domain.ReferenceSource) error {
	refs, err := LoadReferences(ctx, source, s.userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.refs, s.refErr = refs, err
	return err
}

// UseReferences installs an already built snapshot.
func (s *Session) UseReferences(refs *References) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs, s.refErr = refs, nil
}

// Parse replaces the session file, guesses a fresh mapping and clears the last report.
func (s *Session) Parse(name string, r io.Reader) error {
	file, err := ParseFile(name, r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return domain.ErrImportInProgress
	}
	s.touch()
	s.file = file
	s.lastReport = nil
	s.setMapping(GuessMapping(file.Headers))
	return nil
}

// SetMapping points one field at a header; an empty header unmaps it.
func (s *Session) SetMapping(field Field, header string) error {
	if _, err := ParseField(string(field)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return domain.ErrImportInProgress
	}
	s.touch()

	if s.file == nil {
		return domain.ErrNoFile
	}
	if header != "" && !s.file.HasHeader(header) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownHeader, header)
	}

	next := s.mapping.Clone()
	next[field] = header
	s.setMapping(next)
	return nil
}

// ResetMapping discards manual changes and goes back to the guessed mapping.
func (s *Session) ResetMapping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return domain.ErrImportInProgress
	}
	s.touch()

	if s.file == nil {
		s.setMapping(ColumnMapping{})
		return nil
	}
	s.setMapping(GuessMapping(s.file.Headers))
	return nil
}

// setMapping must be called with mu held.
func (s *Session) setMapping(m ColumnMapping) {
	s.mapping = m.Clone()
	if s.file == nil {
		s.preview = []PreviewRow{}
		return
	}
	s.preview = Preview(s.file.Rows, s.mapping, s.previewLimit)
}

// View is a consistent snapshot of the session for presentation.
type View struct {
	ID              string        `json:"session_id"`
	FileName        string        `json:"file_name"`
	Headers         []string      `json:"headers"`
	Mapping         ColumnMapping `json:"mapping"`
	MissingRequired []Field       `json:"missing_required"`
	CanImport       bool          `json:"can_import"`
	ReferencesReady bool          `json:"references_ready"`
	Running         bool          `json:"running"`
	Preview         []PreviewRow  `json:"preview"`
	TotalRows       int           `json:"total_rows"`
	CreatedAt       time.Time     `json:"created_at"`
}

func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	running := s.running.Load()
	v := View{
		ID:              s.id,
		Headers:         []string{},
		Mapping:         s.mapping.Clone(),
		MissingRequired: s.mapping.Missing(),
		ReferencesReady: s.refs != nil,
		Running:         running,
		Preview:         s.preview,
		CreatedAt:       s.createdAt,
	}
	if v.Preview == nil {
		v.Preview = []PreviewRow{}
	}
	if s.file != nil {
		v.FileName = s.file.Name
		v.Headers = append(v.Headers, s.file.Headers...)
		v.TotalRows = len(s.file.Rows)
	}
	v.CanImport = s.file != nil && s.refs != nil && s.mapping.Complete() && !running
	return v
}

// LastReport returns the report of the most recent finished run, if any.
func (s *Session) LastReport() *Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReport
}

// IdleSince reports the last time the session was used.
func (s *Session) IdleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched
}

func (s *Session) Running() bool {
	return s.running.Load()
}

// Close takes the run slot for good so the session can be discarded without
// an import starting underneath. It fails while an import is running.
func (s *Session) Close() error {
	if !s.running.CompareAndSwap(false, true) {
		return domain.ErrImportInProgress
	}
	return nil
}

func (s *Session) touch() {
	s.touched = time.Now()
}

// Run is an import that passed every precondition and holds the session's
// run slot until Execute returns.
type Run struct {
	session    *Session
	totalRows  int
	validation Validation
	done       atomic.Bool
}

// Start checks the preconditions, validates every row and reserves the
// session. It fails fast, before anything is submitted.
func (s *Session) Start() (*Run, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrImportInProgress
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	var err error
	switch {
	case s.refs == nil && s.refErr != nil:
		err = fmt.Errorf("%w: %w", domain.ErrReferencesNotLoaded, s.refErr)
	case s.refs == nil:
		err = domain.ErrReferencesNotLoaded
	case s.file == nil:
		err = domain.ErrNoFile
	case !s.mapping.Complete():
		err = fmt.Errorf("%w: %v", domain.ErrRequiredFieldsUnmapped, s.mapping.Missing())
	}
	if err != nil {
		s.running.Store(false)
		return nil, err
	}

	s.lastReport = nil
	return &Run{
		session:    s,
		totalRows:  len(s.file.Rows),
		validation: Validate(s.file.Rows, s.mapping, s.refs),
	}, nil
}

func (r *Run) TotalRows() int { return r.totalRows }

// Candidates is the number of rows that will be submitted.
func (r *Run) Candidates() int { return len(r.validation.Candidates) }

func (r *Run) Validation() Validation { return r.validation }

// Execute submits the valid rows and stores the report on the session. It may
// be called once; the session accepts a new run afterwards.
func (r *Run) Execute(ctx context.Context, onProgress ProgressFunc) (Report, error) {
	if !r.done.CompareAndSwap(false, true) {
		return Report{}, domain.ErrImportInProgress
	}
	s := r.session
	defer s.running.Store(false)

	result, err := s.executor.Run(ctx, s.userID, r.validation.Candidates, onProgress)
	if err != nil {
		return Report{}, err
	}

	report := NewReport(r.totalRows, r.validation, result)

	s.mu.Lock()
	s.touch()
	s.lastReport = &report
	s.mu.Unlock()

	return report, nil
}

// Release gives the run slot back without submitting anything.
func (r *Run) Release() {
	if r.done.CompareAndSwap(false, true) {
		r.session.running.Store(false)
	}
}

// Import validates and submits in one call.
func (s *Session) Import(ctx context.Context, onProgress ProgressFunc) (Report, error) {
	run, err := s.Start()
	if err != nil {
		return Report{}, err
	}
	return run.Execute(ctx, onProgress)
}

// Validate runs the row checks without submitting anything.
func (s *Session) Validate() (Validation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.refs == nil:
		return Validation{}, domain.ErrReferencesNotLoaded
	case s.file == nil:
		return Validation{}, domain.ErrNoFile
	case !s.mapping.Complete():
		return Validation{}, fmt.Errorf("%w: %v", domain.ErrRequiredFieldsUnmapped, s.mapping.Missing())
	}
	return Validate(s.file.Rows, s.mapping, s.refs), nil
}
