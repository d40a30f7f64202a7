package batch

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadLedger_MissingFile(t *testing.T) {
	ledger := LoadLedger(filepath.Join(t.TempDir(), "missing.csv"), discardLogger())
	if len(ledger) != 0 {
		t.Errorf("ledger = %v, want empty", ledger)
	}
}

func TestLoadLedger_ReadsQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	content := "topic,gender,care_focus,has_kids,role,prompt,question,response,thread_id,run_id,status,error\n" +
		"Sleep,Female,Myself,No,individual,p,Why am I tired?,ans,t1,r1,completed,\n" +
		"Sleep,Female,Myself,No,individual,p,How much sleep?,,t2,r2,failed,boom\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ledger := LoadLedger(path, discardLogger())
	if len(ledger) != 2 {
		t.Fatalf("ledger size = %d, want 2", len(ledger))
	}
	// A failed row still counts as processed; re-running it is a manual call.
	if !ledger.Has("How much sleep?") {
		t.Error("failed row missing from ledger")
	}
	if !ledger.Has("Why am I tired?") {
		t.Error("completed row missing from ledger")
	}
	if ledger.Has("why am i tired?") {
		t.Error("matching must be exact, not case-folded")
	}
}

func TestLoadLedger_SkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	content := "topic,gender,care_focus,has_kids,role,prompt,question,response,thread_id,run_id,status,error\n" +
		"short,row\n" +
		"Sleep,Female,Myself,No,individual,p,Good question?,ans,t1,r1,completed,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ledger := LoadLedger(path, discardLogger())
	if !ledger.Has("Good question?") {
		t.Error("valid row missing from ledger")
	}
	if len(ledger) != 1 {
		t.Errorf("ledger size = %d, want 1", len(ledger))
	}
}

func TestLoadLedger_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// No question column: ledger degrades to empty, never aborts.
	ledger := LoadLedger(path, discardLogger())
	if len(ledger) != 0 {
		t.Errorf("ledger = %v, want empty", ledger)
	}
}
