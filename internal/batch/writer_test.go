package batch

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gustavdup/health-question-answer-generator/internal/topics"
)

func testRow(question string, status Status) ResultRow {
	return ResultRow{
		Topic:     "Sleep",
		Gender:    topics.GenderFemale,
		CareFocus: topics.CareMyself,
		HasKids:   topics.KidsNo,
		Role:      "individual",
		Prompt:    "prompt text",
		Question:  question,
		Response:  "a reply",
		ThreadID:  "thread_1",
		RunID:     "run_1",
		Status:    status,
	}
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestAppendRow_HeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := AppendRow(path, testRow("first?", StatusCompleted)); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}
	if err := AppendRow(path, testRow("second?", StatusFailed)); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}

	rows := readAll(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}

	wantHeader := []string{
		"topic", "gender", "care_focus", "has_kids", "role",
		"prompt", "question", "response", "thread_id", "run_id", "status", "error",
	}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	if rows[1][6] != "first?" || rows[1][10] != "completed" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][6] != "second?" || rows[2][10] != "failed" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestAppendRow_ResumeIntoExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	// First "run" writes two rows; a later invocation appends more.
	for _, q := range []string{"a?", "b?"} {
		if err := AppendRow(path, testRow(q, StatusCompleted)); err != nil {
			t.Fatal(err)
		}
	}
	if err := AppendRow(path, testRow("c?", StatusTimeout)); err != nil {
		t.Fatal(err)
	}

	rows := readAll(t, path)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}

	// The appended file must still load as a ledger.
	ledger := LoadLedger(path, discardLogger())
	for _, q := range []string{"a?", "b?", "c?"} {
		if !ledger.Has(q) {
			t.Errorf("ledger missing %q", q)
		}
	}
}

func TestAppendRow_MultilineFieldsSurvive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	row := testRow("multi?", StatusCompleted)
	row.Response = "line one\nline two, with comma\n\"quoted\""
	if err := AppendRow(path, row); err != nil {
		t.Fatal(err)
	}

	rows := readAll(t, path)
	if rows[1][7] != row.Response {
		t.Errorf("response = %q, want %q", rows[1][7], row.Response)
	}
}
