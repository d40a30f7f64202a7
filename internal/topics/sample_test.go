package topics

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTopicFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateSample_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeTopicFile(t, dir, "1_sleep.txt",
			"Topic 1: Sleep\n💗 Female\n🩺 Myself (No Kids)\nWhy am I tired?\nHow much sleep do I need?\n"),
		writeTopicFile(t, dir, "2_stress.txt",
			"Topic 2: Stress\n🩵 Male\n👨‍👧 Myself (With Kids)\nHow do I manage stress?\n"),
		writeTopicFile(t, dir, "3_family.txt",
			"Topic 3: Nutrition\n💚 Gender Neutral\n💞 My Family (With Kids)\nWhat should we eat?\n"),
	}

	rng := rand.New(rand.NewSource(1))
	content, err := GenerateSample(files, rng)
	if err != nil {
		t.Fatalf("GenerateSample() error = %v", err)
	}

	// The generated file must parse back into one record per source file.
	records, err := NewParser(nil).Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse(generated) error = %v\ncontent:\n%s", err, content)
	}
	if len(records) != len(files) {
		t.Fatalf("got %d records, want %d\ncontent:\n%s", len(records), len(files), content)
	}

	topics := map[string]bool{}
	for _, rec := range records {
		topics[rec.Topic] = true
	}
	for _, want := range []string{"Sleep", "Stress", "Nutrition"} {
		if !topics[want] {
			t.Errorf("generated sample missing topic %q", want)
		}
	}
}

func TestGenerateSample_NoQuestions(t *testing.T) {
	dir := t.TempDir()
	empty := writeTopicFile(t, dir, "empty.txt", "Topic 1: Nothing\n💗 Female\n🩺 Myself (No Kids)\n")

	rng := rand.New(rand.NewSource(1))
	if _, err := GenerateSample([]string{empty}, rng); err == nil {
		t.Error("GenerateSample() error = nil, want error for empty inputs")
	}
}
