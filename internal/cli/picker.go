package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	tea "charm.land/bubbletea/v2"
)

// pickerModel is the interactive file selector shown when `run` is called
// without an input file.
type pickerModel struct {
	files    []string
	cursor   int
	choice   string
	quitting bool
	theme    Theme
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = m.files[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() tea.View {
	if m.quitting || m.choice != "" {
		return tea.NewView("")
	}

	s := m.theme.statusStyle().Render("Select a topic file") + "\n\n"
	for i, f := range m.files {
		name := filepath.Base(f)
		if i == m.cursor {
			s += m.theme.completedStyle().Render("> "+name) + "\n"
		} else {
			s += "  " + name + "\n"
		}
	}
	s += "\n" + m.theme.hintStyle().Render("↑/↓ move · enter select · q quit") + "\n"
	return tea.NewView(s)
}

// pickInputFile lists the .txt files in dir and lets the operator choose
// one interactively.
func pickInputFile(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return "", fmt.Errorf("list topic files: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no topic files found in %s", dir)
	}
	sort.Strings(files)

	p := tea.NewProgram(pickerModel{files: files, theme: defaultTheme})
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("file picker: %w", err)
	}

	m, ok := finalModel.(pickerModel)
	if !ok || m.choice == "" {
		return "", fmt.Errorf("no file selected")
	}
	return m.choice, nil
}
