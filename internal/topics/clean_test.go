package topics

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topics.txt")

	input := "Topic 1: Sleep\n💗 Female\n🩺 Myself (No Kids)\n1. First question?\n10) Second question?\nThird question?\n"
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	changed, err := CleanFile(path)
	if err != nil {
		t.Fatalf("CleanFile() error = %v", err)
	}
	if changed != 2 {
		t.Errorf("CleanFile() changed = %d, want 2", changed)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Topic 1: Sleep\n💗 Female\n🩺 Myself (No Kids)\nFirst question?\nSecond question?\nThird question?\n"
	if string(got) != want {
		t.Errorf("cleaned file = %q, want %q", got, want)
	}

	// Second pass finds nothing to do.
	changed, err = CleanFile(path)
	if err != nil {
		t.Fatalf("CleanFile() second pass error = %v", err)
	}
	if changed != 0 {
		t.Errorf("CleanFile() second pass changed = %d, want 0", changed)
	}
}
