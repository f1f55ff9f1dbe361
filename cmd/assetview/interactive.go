package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/meshverse/assetloader/asset"
	"github.com/meshverse/assetloader/cache"
	"github.com/meshverse/assetloader/fetch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type historyEntry struct {
	request string
	line    string
	err     error
}

type interactiveModel struct {
	cache   *cache.Cache
	input   textinput.Model
	history []historyEntry
	loading bool
}

type loadResultMsg struct {
	request string
	line    string
	err     error
}

func newInteractiveModel(root string, logger *zap.Logger) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "model asset://props/lantern.glb"
	ti.Prompt = "load> "
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{
		cache: cache.New(&fetch.HTTP{}, cache.WithAssetsRoot(root), cache.WithLogger(logger)),
		input: ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if m.loading {
				return m, nil
			}
			request := strings.TrimSpace(m.input.Value())
			if request == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.loading = true
			return m, m.load(request)
		}

	case loadResultMsg:
		m.loading = false
		m.history = append(m.history, historyEntry{
			request: msg.request,
			line:    msg.line,
			err:     msg.err,
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// load runs one cache load off the UI goroutine.
func (m *interactiveModel) load(request string) tea.Cmd {
	return func() tea.Msg {
		fields := strings.Fields(request)
		if len(fields) != 2 {
			return loadResultMsg{
				request: request,
				err:     fmt.Errorf("expected: <kind> <locator>"),
			}
		}
		kind, locator := asset.Kind(fields[0]), fields[1]

		view, err := m.cache.Load(context.Background(), kind, locator)
		if err != nil {
			return loadResultMsg{request: request, err: err}
		}
		if view == nil {
			return loadResultMsg{request: request, line: "rejected by admission gate"}
		}
		return loadResultMsg{request: request, line: summarize(view)}
	}
}

func summarize(view asset.View) string {
	switch v := view.(type) {
	case *asset.ModelView:
		return fmt.Sprintf("%d nodes, %d animations", v.Instantiate().Count(), len(v.Document().Animations))
	case *asset.AvatarView:
		if v.Factory == nil {
			return fmt.Sprintf("%d nodes, no rig", v.Instantiate().Count())
		}
		return fmt.Sprintf("%d nodes, rig v%s, height %.2f",
			v.Instantiate().Count(), v.Factory.Version().String(), v.Factory.Height())
	case *asset.EmoteView:
		return fmt.Sprintf("clip %q, %.2fs", v.ClipName(), v.Duration())
	case *asset.ScriptView:
		return fmt.Sprintf("script, %d bytes", len(v.Source))
	}
	return "unknown view"
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Asset Viewer"))
	b.WriteString("\n\n")

	for _, entry := range m.history {
		fields := strings.Fields(entry.request)
		if len(fields) == 2 {
			b.WriteString(kindStyle.Render(fields[0]))
			b.WriteString(" ")
			b.WriteString(fields[1])
		} else {
			b.WriteString(entry.request)
		}
		b.WriteString("\n  ")
		switch {
		case entry.err != nil:
			b.WriteString(errorStyle.Render(entry.err.Error()))
		case strings.HasPrefix(entry.line, "rejected"):
			b.WriteString(rejectStyle.Render(entry.line))
		default:
			b.WriteString(resultStyle.Render(entry.line))
		}
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("loading...\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter load • esc quit"))
	return b.String()
}

func runInteractive(root string, logger *zap.Logger) error {
	p := tea.NewProgram(newInteractiveModel(root, logger))
	_, err := p.Run()
	return err
}
