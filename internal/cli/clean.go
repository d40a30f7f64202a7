package cli

import (
	"fmt"

	"github.com/gustavdup/health-question-answer-generator/internal/topics"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>...",
	Short: "Strip leading question numbers from topic files",
	Long: `Remove leading numbering like "4." or "10)" from question lines,
rewriting each file in place. Numbering is also stripped at parse time, so
cleaning is cosmetic — it keeps the source files tidy for editing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	total := 0
	for _, path := range args {
		changed, err := topics.CleanFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d lines cleaned\n", path, changed)
		total += changed
	}
	fmt.Printf("Done: %d files, %d lines\n", len(args), total)
	return nil
}
