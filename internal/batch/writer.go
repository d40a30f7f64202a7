package batch

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gustavdup/health-question-answer-generator/internal/topics"
)

// Status is the terminal outcome recorded for one question.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimeout   Status = "timeout"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// ResultRow is one output line: the question with its context, the exact
// prompt sent, and the outcome. Rows are append-only and never updated.
type ResultRow struct {
	Topic     string
	Gender    topics.Gender
	CareFocus topics.CareFocus
	HasKids   topics.HasKids
	Role      string
	Prompt    string
	Question  string
	Response  string
	ThreadID  string
	RunID     string
	Status    Status
	Error     string
}

// resultColumns is the fixed output column order. The question column is
// the resume-matching key and must stay present.
var resultColumns = []string{
	"topic", "gender", "care_focus", "has_kids", "role",
	"prompt", "question", "response", "thread_id", "run_id", "status", "error",
}

// AppendRow appends one result to the output CSV, writing the header first
// when the file is new. The file is opened, flushed, and closed per row so
// a crash mid-batch loses at most the in-flight question.
func AppendRow(path string, row ResultRow) error {
	_, statErr := os.Stat(path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if newFile {
		if err := w.Write(resultColumns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	record := []string{
		row.Topic,
		string(row.Gender),
		string(row.CareFocus),
		string(row.HasKids),
		row.Role,
		row.Prompt,
		row.Question,
		row.Response,
		row.ThreadID,
		row.RunID,
		string(row.Status),
		row.Error,
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return f.Close()
}
