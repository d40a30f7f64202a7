package batch

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
)

// Ledger is the set of questions already present in an output file.
// Any prior row counts as processed regardless of its status; re-running
// a failed question is a manual decision, not an automatic one.
type Ledger map[string]struct{}

// Has reports whether a question was already recorded. Matching is exact
// string equality — whitespace or case drift is not deduplicated.
func (l Ledger) Has(question string) bool {
	_, ok := l[question]
	return ok
}

// LoadLedger reads the question column of an existing output CSV. A
// missing or empty file yields an empty ledger. The ledger is advisory:
// malformed rows are skipped with a warning, never fatal.
func LoadLedger(path string, logger *slog.Logger) Ledger {
	ledger := make(Ledger)

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("cannot read existing output, starting fresh", "path", path, "error", err)
		}
		return ledger
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err != io.EOF {
			logger.Warn("cannot read output header, starting fresh", "path", path, "error", err)
		}
		return ledger
	}

	questionCol := -1
	for i, name := range header {
		if name == "question" {
			questionCol = i
			break
		}
	}
	if questionCol < 0 {
		logger.Warn("output file has no question column, starting fresh", "path", path)
		return ledger
	}

	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping unreadable output row", "path", path, "line", line, "error", err)
			continue
		}
		if len(row) <= questionCol {
			logger.Warn("skipping short output row", "path", path, "line", line, "columns", len(row))
			continue
		}
		ledger[row[questionCol]] = struct{}{}
	}

	return ledger
}
