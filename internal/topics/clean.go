package topics

import (
	"fmt"
	"os"
	"strings"
)

// CleanFile strips leading question numbering from every line of a topic
// file, rewriting it in place. Returns the number of lines changed.
func CleanFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	changed := 0
	for i, line := range lines {
		stripped := numberingRe.ReplaceAllString(line, "")
		if stripped != line {
			lines[i] = stripped
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return changed, nil
}
