package domain

import "time"

// RunSummary counts records per outcome.
type RunSummary struct {
	Lines            int
	Succeeded        int
	InvalidNumeral   int
	InvalidOperation int
	InvalidFormat    int
}

// Add accounts for one record.
func (s *RunSummary) Add(r LineRecord) {
	s.Lines++
	switch r.Outcome {
	case OutcomeSuccess:
		s.Succeeded++
	case OutcomeInvalidNumeral:
		s.InvalidNumeral++
	case OutcomeInvalidOperation:
		s.InvalidOperation++
	case OutcomeInvalidFormat:
		s.InvalidFormat++
	}
}

// Failed is the number of lines that did not produce words.
func (s RunSummary) Failed() int {
	return s.Lines - s.Succeeded
}

// RunResult is the in-memory result of processing one batch.
type RunResult struct {
	RunID string

	InputPath      string
	OutputPath     string
	ProcessLogPath string

	StartedAt time.Time
	EndedAt   time.Time

	Records []LineRecord
	Summary RunSummary
}

// RunArtifact represents a persisted run for reproducibility.
type RunArtifact struct {
	ID    string
	RunID string

	InputPath      string
	OutputPath     string
	ProcessLogPath string

	StartedAt time.Time
	EndedAt   time.Time

	Summary RunSummary
	Records []LineRecord
}

// ArtifactFromResult copies a run result into its persisted form.
func ArtifactFromResult(run RunResult) RunArtifact {
	return RunArtifact{
		RunID:          run.RunID,
		InputPath:      run.InputPath,
		OutputPath:     run.OutputPath,
		ProcessLogPath: run.ProcessLogPath,
		StartedAt:      run.StartedAt,
		EndedAt:        run.EndedAt,
		Summary:        run.Summary,
		Records:        run.Records,
	}
}

// RunRef identifies a saved run artifact.
type RunRef struct {
	ID        string
	Path      string
	StartedAt time.Time
}
