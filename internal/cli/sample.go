package cli

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gustavdup/health-question-answer-generator/internal/topics"
	"github.com/spf13/cobra"
)

var (
	sampleOut  string
	sampleSeed int64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a synthetic test topic file",
	Long: `Build a small test input by drawing one question from each topic file in
the data directory, preferring gender/context combinations not used yet.
The result is a well-formed topic file suitable for an end-to-end dry run
without consuming real question data.

Examples:
  healthbatch sample
  healthbatch sample --out data/smoke_test.txt --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&sampleOut, "out", "", "output path (default <data-dir>/random_test.txt)")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "random seed, 0 uses the current time")
}

func runSample(cmd *cobra.Command, args []string) error {
	all, err := filepath.Glob(filepath.Join(cfg.DataDir, "*.txt"))
	if err != nil {
		return fmt.Errorf("list topic files: %w", err)
	}

	// Leave previously generated test files out of the pool.
	var files []string
	for _, f := range all {
		if strings.Contains(strings.ToLower(filepath.Base(f)), "test") {
			continue
		}
		files = append(files, f)
	}
	sort.Strings(files)
	if len(files) == 0 {
		return fmt.Errorf("no topic files found in %s", cfg.DataDir)
	}

	seed := sampleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	content, err := topics.GenerateSample(files, rng)
	if err != nil {
		return err
	}

	out := sampleOut
	if out == "" {
		out = filepath.Join(cfg.DataDir, "random_test.txt")
	}
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}

	fmt.Printf("Wrote %s (%d source files)\n", out, len(files))
	return nil
}
