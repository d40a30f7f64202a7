package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gustavdup/health-question-answer-generator/internal/assistant"
	"github.com/gustavdup/health-question-answer-generator/internal/prompt"
	"github.com/gustavdup/health-question-answer-generator/internal/topics"
)

// API is the assistant surface the runner drives. Both the HTTP client and
// the dry-run stub satisfy it.
type API interface {
	CreateThread(ctx context.Context) (string, error)
	AddMessage(ctx context.Context, threadID, text string) error
	CreateRun(ctx context.Context, threadID string) (string, error)
	GetRun(ctx context.Context, threadID, runID string) (assistant.RunState, error)
	LatestAssistantMessage(ctx context.Context, threadID string) (string, error)
}

// Reporter receives progress events. The CLI renders them; tests can drop
// them with a no-op implementation.
type Reporter interface {
	QuestionStarted(index, total int, question string)
	QuestionFinished(index, total int, row ResultRow)
	BatchFinished(summary Summary)
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) QuestionStarted(int, int, string)     {}
func (NopReporter) QuestionFinished(int, int, ResultRow) {}
func (NopReporter) BatchFinished(Summary)                {}

// Summary aggregates one invocation's outcomes.
type Summary struct {
	Total    int // questions parsed from the input
	Skipped  int // already present in the output file
	Pending  int // questions attempted this run
	ByStatus map[Status]int
}

// Config holds the runner knobs. Zero values fall back to the batch
// defaults (5s poll, 5m wall clock, 5 retry attempts from 2s to 60s).
type Config struct {
	OutputPath   string
	PollInterval time.Duration
	RunTimeout   time.Duration
	Retry        RetryPolicy
}

// Runner processes questions strictly one at a time: each question is
// resolved through its output row append before the next begins.
type Runner struct {
	cfg    Config
	api    API
	report Reporter
	logger *slog.Logger
}

// NewRunner creates a batch runner.
func NewRunner(cfg Config, api API, report Reporter, logger *slog.Logger) *Runner {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 5 * time.Minute
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = DefaultRetryPolicy()
	}
	if report == nil {
		report = NopReporter{}
	}
	return &Runner{cfg: cfg, api: api, report: report, logger: logger}
}

// retryable classifies transient failures: network errors and retryable
// API statuses qualify, other API rejections and context cancellation fail
// the call immediately.
func retryable(err error) bool {
	var statusErr *assistant.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// Run executes the batch over the parsed records. Questions already in the
// output file are skipped; every attempted question appends exactly one
// row, immediately. A single question's permanent failure never aborts the
// batch — only context cancellation does.
func (r *Runner) Run(ctx context.Context, records []topics.QuestionRecord) (Summary, error) {
	batchID := uuid.NewString()
	logger := r.logger.With("batch_id", batchID)

	summary := Summary{
		Total:    len(records),
		ByStatus: make(map[Status]int),
	}

	ledger := LoadLedger(r.cfg.OutputPath, logger)
	var pending []topics.QuestionRecord
	for _, rec := range records {
		if ledger.Has(rec.Question) {
			summary.Skipped++
			continue
		}
		pending = append(pending, rec)
	}
	summary.Pending = len(pending)

	logger.Info("batch starting",
		"questions", summary.Total,
		"skipped", summary.Skipped,
		"pending", summary.Pending,
		"output", r.cfg.OutputPath,
	)

	for i, rec := range pending {
		select {
		case <-ctx.Done():
			logger.Info("batch interrupted", "processed", i, "pending", len(pending)-i)
			return summary, ctx.Err()
		default:
		}

		r.report.QuestionStarted(i+1, len(pending), rec.Question)

		row, err := r.process(ctx, rec)
		if err != nil {
			// Only context cancellation surfaces here; the in-flight
			// question is abandoned without a row and can be re-run.
			return summary, err
		}

		if err := AppendRow(r.cfg.OutputPath, row); err != nil {
			return summary, fmt.Errorf("append result for %q: %w", rec.Question, err)
		}

		summary.ByStatus[row.Status]++
		r.report.QuestionFinished(i+1, len(pending), row)

		logger.Info("question processed",
			"index", i+1,
			"of", len(pending),
			"status", string(row.Status),
			"thread_id", row.ThreadID,
		)
	}

	logger.Info("batch complete",
		"completed", summary.ByStatus[StatusCompleted],
		"failed", summary.ByStatus[StatusFailed],
		"timeout", summary.ByStatus[StatusTimeout],
	)
	r.report.BatchFinished(summary)

	return summary, nil
}

// process drives one question through the API state machine and returns
// its result row. All failures are captured in the row; the only error
// returned is context cancellation.
func (r *Runner) process(ctx context.Context, rec topics.QuestionRecord) (ResultRow, error) {
	role := topics.Role(rec.Gender, rec.HasKids)
	message := prompt.Build(rec, role)

	row := ResultRow{
		Topic:     rec.Topic,
		Gender:    rec.Gender,
		CareFocus: rec.CareFocus,
		HasKids:   rec.HasKids,
		Role:      role,
		Prompt:    message,
		Question:  rec.Question,
	}

	fail := func(err error) (ResultRow, error) {
		if ctx.Err() != nil {
			return ResultRow{}, ctx.Err()
		}
		row.Status = StatusFailed
		row.Error = err.Error()
		return row, nil
	}

	var threadID string
	err := r.cfg.Retry.Do(ctx, retryable, func() error {
		var err error
		threadID, err = r.api.CreateThread(ctx)
		return err
	})
	if err != nil {
		return fail(err)
	}
	row.ThreadID = threadID

	err = r.cfg.Retry.Do(ctx, retryable, func() error {
		return r.api.AddMessage(ctx, threadID, message)
	})
	if err != nil {
		return fail(err)
	}

	var runID string
	err = r.cfg.Retry.Do(ctx, retryable, func() error {
		var err error
		runID, err = r.api.CreateRun(ctx, threadID)
		return err
	})
	if err != nil {
		return fail(err)
	}
	row.RunID = runID

	deadline := time.Now().Add(r.cfg.RunTimeout)
	for {
		var state assistant.RunState
		err = r.cfg.Retry.Do(ctx, retryable, func() error {
			var err error
			state, err = r.api.GetRun(ctx, threadID, runID)
			return err
		})
		if err != nil {
			return fail(err)
		}

		switch state {
		case assistant.RunCompleted:
			var text string
			err = r.cfg.Retry.Do(ctx, retryable, func() error {
				var err error
				text, err = r.api.LatestAssistantMessage(ctx, threadID)
				return err
			})
			if err != nil {
				return fail(err)
			}
			row.Status = StatusCompleted
			row.Response = text
			return row, nil

		case assistant.RunFailed, assistant.RunCancelled, assistant.RunExpired:
			row.Status = Status(state)
			row.Error = fmt.Sprintf("run %s", state)
			return row, nil
		}

		if time.Now().After(deadline) {
			// The run is abandoned client-side; it may still finish on
			// the server but its result is not collected.
			row.Status = StatusTimeout
			row.Error = fmt.Sprintf("run did not finish within %s", r.cfg.RunTimeout)
			return row, nil
		}

		select {
		case <-ctx.Done():
			return ResultRow{}, ctx.Err()
		case <-time.After(r.cfg.PollInterval):
		}
	}
}
