package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gustavdup/health-question-answer-generator/internal/assistant"
	"github.com/gustavdup/health-question-answer-generator/internal/batch"
	"github.com/gustavdup/health-question-answer-generator/internal/topics"
	"github.com/spf13/cobra"
)

var (
	runOutput  string
	runMarkers string
	runDryRun  bool
)

var runCmd = &cobra.Command{
	Use:   "run [input-file]",
	Short: "Process a topic file through the assistant",
	Long: `Run the batch over one topic file. Without an argument, an interactive
picker lists the .txt files in the data directory.

The output CSV defaults to <output-dir>/<input-stem>_<timestamp>.csv. Point
--output at an existing CSV to resume into it: questions already recorded
there are skipped, whatever their status.

Examples:
  healthbatch run data/1_energy_fatigue.txt
  healthbatch run data/1_energy_fatigue.txt --output outputs/energy.csv
  healthbatch run --dry-run data/random_test.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output CSV path (resumes if it exists)")
	runCmd.Flags().StringVar(&runMarkers, "markers", "", "YAML file overriding the header marker table")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "use a stub assistant, no network calls")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input, err := resolveInput(args)
	if err != nil {
		return err
	}

	markers, err := loadMarkerTable()
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	records, err := topics.NewParser(markers).Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}
	if len(records) == 0 {
		fmt.Println("No questions found in input file.")
		return nil
	}

	output := runOutput
	if output == "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		output = filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%d.csv", stem, time.Now().Unix()))
	}

	var api batch.API
	if runDryRun {
		api = assistant.NewStub()
	} else {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
		api = assistant.NewClient(cfg.APIBaseURL, cfg.OpenAIAPIKey, cfg.AssistantID)
	}

	runner := batch.NewRunner(batch.Config{
		OutputPath:   output,
		PollInterval: cfg.PollInterval,
		RunTimeout:   cfg.RunTimeout,
		Retry: batch.RetryPolicy{
			MaxAttempts: cfg.RetryAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
			MaxDelay:    cfg.RetryMaxDelay,
		},
	}, api, newConsoleReporter(os.Stdout), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Processing %s (%d questions)\nResults: %s\n\n", input, len(records), output)

	if _, err := runner.Run(ctx, records); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Printf("\nInterrupted. Re-run with --output %s to continue.\n", output)
			return nil
		}
		return err
	}
	return nil
}

// resolveInput returns the positional input file, or asks the operator to
// pick one from the data directory.
func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		if _, err := os.Stat(args[0]); err != nil {
			return "", fmt.Errorf("input file: %w", err)
		}
		return args[0], nil
	}
	return pickInputFile(cfg.DataDir)
}

func loadMarkerTable() ([]topics.Marker, error) {
	if runMarkers == "" {
		return nil, nil
	}
	markers, err := topics.LoadMarkers(runMarkers)
	if err != nil {
		return nil, fmt.Errorf("load markers: %w", err)
	}
	return markers, nil
}
