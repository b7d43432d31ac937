package usecase

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

// ProcessLines reads in line by line and writes one output line per input line
// to out. When trace is non-nil, each line's process log entry is written to it.
//
// Lines are handled strictly in order and each outcome is written before the
// next line is read. Per-line failures never abort the loop; only stream errors
// and context cancellation do.
func ProcessLines(ctx context.Context, in io.Reader, out io.Writer, trace io.Writer, log *slog.Logger) ([]domain.LineRecord, domain.RunSummary, error) {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var (
		records []domain.LineRecord
		summary domain.RunSummary
	)

	r := bufio.NewReader(in)
	bw := bufio.NewWriter(out)
	var tw *bufio.Writer
	if trace != nil {
		tw = bufio.NewWriter(trace)
	}

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			_ = flush(bw, tw)
			return records, summary, err
		}

		raw, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			_ = flush(bw, tw)
			return records, summary, &domain.OpError{Op: "process.read", Kind: domain.KindExecution, Err: readErr}
		}
		if raw == "" && readErr != nil {
			break
		}

		rec := domain.ProcessLine(n, raw)
		records = append(records, rec)
		summary.Add(rec)

		log.Debug("line.processed",
			"line", n,
			"outcome", string(rec.Outcome),
			"reason", rec.Reason,
		)

		if err := writeRecord(bw, tw, rec); err != nil {
			return records, summary, err
		}

		if readErr != nil {
			break
		}
	}

	if err := flush(bw, tw); err != nil {
		return records, summary, err
	}
	return records, summary, nil
}

// writeRecord writes the output and trace lines for rec and flushes both, so a
// line is fully resolved on its sinks before the next one starts.
func writeRecord(out, trace *bufio.Writer, rec domain.LineRecord) error {
	if _, err := out.WriteString(rec.OutputLine() + "\n"); err != nil {
		return &domain.OpError{Op: "process.write_output", Kind: domain.KindExecution, Err: err}
	}
	if trace != nil {
		if _, err := trace.WriteString(strings.Join(rec.TraceLines(), "\n") + "\n"); err != nil {
			return &domain.OpError{Op: "process.write_trace", Kind: domain.KindExecution, Err: err}
		}
	}
	return flush(out, trace)
}

func flush(out, trace *bufio.Writer) error {
	if err := out.Flush(); err != nil {
		return &domain.OpError{Op: "process.write_output", Kind: domain.KindExecution, Err: err}
	}
	if trace != nil {
		if err := trace.Flush(); err != nil {
			return &domain.OpError{Op: "process.write_trace", Kind: domain.KindExecution, Err: err}
		}
	}
	return nil
}
