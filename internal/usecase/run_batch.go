package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
)

// BatchRequest names the streams of one run. An empty ProcessLogPath disables
// the process log.
type BatchRequest struct {
	InputPath      string
	OutputPath     string
	ProcessLogPath string
}

type RunBatch struct {
	streams ports.StreamProvider
	store   ports.ArtifactStore
	log     *slog.Logger
	now     func() time.Time
	newID   func() string
}

type BatchOption func(*RunBatch)

func WithLogger(log *slog.Logger) BatchOption {
	return func(uc *RunBatch) {
		if log != nil {
			uc.log = log
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) BatchOption {
	return func(uc *RunBatch) { uc.now = now }
}

// WithRunID overrides run id generation.
func WithRunID(newID func() string) BatchOption {
	return func(uc *RunBatch) { uc.newID = newID }
}

// NewRunBatch builds the batch use case. store may be nil, in which case no
// artifact is saved.
func NewRunBatch(streams ports.StreamProvider, store ports.ArtifactStore, opts ...BatchOption) *RunBatch {
	uc := &RunBatch{
		streams: streams,
		store:   store,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute acquires all streams, processes every input line and releases the
// streams. Failing to acquire any stream aborts before the first line.
func (uc *RunBatch) Execute(ctx context.Context, req BatchRequest) (domain.RunResult, string, error) {
	run := domain.RunResult{
		RunID:          uc.newID(),
		InputPath:      req.InputPath,
		OutputPath:     req.OutputPath,
		ProcessLogPath: req.ProcessLogPath,
		StartedAt:      uc.now(),
	}
	log := uc.log.With("run_id", run.RunID)

	s, err := uc.acquire(req)
	if err != nil {
		log.Error("batch.acquire_failed", "err", err)
		run.EndedAt = uc.now()
		return run, "", err
	}

	log.Info("batch.started",
		"input", req.InputPath,
		"output", req.OutputPath,
		"process_log", req.ProcessLogPath,
	)

	var trace io.Writer
	if s.trace != nil {
		trace = s.trace
	}
	records, summary, procErr := ProcessLines(ctx, s.in, s.out, trace, log)
	closeErr := s.close()

	run.Records = records
	run.Summary = summary
	run.EndedAt = uc.now()

	if err := errors.Join(procErr, closeErr); err != nil {
		log.Error("batch.failed", "err", err, "lines", summary.Lines)
		return run, "", err
	}

	log.Info("batch.finished",
		"lines", summary.Lines,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed(),
		"duration_ms", run.EndedAt.Sub(run.StartedAt).Milliseconds(),
	)

	if uc.store == nil {
		return run, "", nil
	}

	id, err := uc.store.SaveRun(domain.ArtifactFromResult(run))
	if err != nil {
		log.Error("batch.save_failed", "err", err)
		return run, "", err
	}
	return run, id, nil
}

type batchStreams struct {
	in    io.ReadCloser
	out   io.WriteCloser
	trace io.WriteCloser
}

func (uc *RunBatch) acquire(req BatchRequest) (*batchStreams, error) {
	s := &batchStreams{}

	in, err := uc.streams.OpenInput(req.InputPath)
	if err != nil {
		return nil, acquireError("batch.open_input", req.InputPath, err)
	}
	s.in = in

	if req.ProcessLogPath != "" {
		trace, err := uc.streams.CreateOutput(req.ProcessLogPath)
		if err != nil {
			_ = s.close()
			return nil, acquireError("batch.open_process_log", req.ProcessLogPath, err)
		}
		s.trace = trace
	}

	out, err := uc.streams.CreateOutput(req.OutputPath)
	if err != nil {
		_ = s.close()
		return nil, acquireError("batch.open_output", req.OutputPath, err)
	}
	s.out = out

	return s, nil
}

func (s *batchStreams) close() error {
	var errs []error
	if s.in != nil {
		errs = append(errs, s.in.Close())
	}
	if s.trace != nil {
		errs = append(errs, s.trace.Close())
	}
	if s.out != nil {
		errs = append(errs, s.out.Close())
	}
	return errors.Join(errs...)
}

func acquireError(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindResource,
		Path: path,
		Err:  errors.Join(domain.ErrResourceAcquisition, err),
	}
}
