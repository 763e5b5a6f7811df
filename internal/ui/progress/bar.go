// File: internal/ui/progress/bar.go
package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"s3lync/pkg/storage"
)

var descStyle = lipgloss.NewStyle().Bold(true)

type byteMsg int64

type doneMsg struct{}

// barRenderer drives a bubbletea program rendering one transfer's progress bar.
type barRenderer struct {
	program  *tea.Program
	finished chan struct{}
}

func newBarRenderer(desc string, total int64, out io.Writer) (*barRenderer, error) {
	if out == nil {
		return nil, fmt.Errorf("no output writer for progress bar")
	}

	model := barModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		desc:  desc,
		total: total,
	}

	program := tea.NewProgram(model,
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	r := &barRenderer{
		program:  program,
		finished: make(chan struct{}),
	}

	go func() {
		defer close(r.finished)
		_, _ = program.Run()
	}()

	return r, nil
}

func (r *barRenderer) advance(bytes int64) {
	r.program.Send(byteMsg(bytes))
}

func (r *barRenderer) stop() {
	r.program.Send(doneMsg{})
	<-r.finished
}

type barModel struct {
	bar     progress.Model
	desc    string
	total   int64
	current int64
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case byteMsg:
		m.current += int64(msg)
		return m, nil
	case doneMsg:
		m.current = m.total
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - len(m.desc) - 24
		return m, nil
	}
	return m, nil
}

func (m barModel) View() string {
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.current) / float64(m.total)
		if percent > 1 {
			percent = 1
		}
	}
	return fmt.Sprintf("%s %s %s/%s",
		descStyle.Render(m.desc),
		m.bar.ViewAs(percent),
		storage.FormatBytes(m.current),
		storage.FormatBytes(m.total),
	)
}
