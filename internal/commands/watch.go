package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zab-bid-org/zabcli/internal/live"
)

type errMsg error

type streamReadyMsg struct {
	ch <-chan live.Event
}

type streamClosedMsg struct{}

type watchModel struct {
	server string
	prefix string

	viewport viewport.Model
	spinner  spinner.Model

	lines     []string
	eventCh   <-chan live.Event
	connected bool
	err       error

	ctx    context.Context
	cancel context.CancelFunc
}

func newWatchModel(cfg *Config) watchModel {
	vp := viewport.New(80, 20)
	vp.SetContent("Connecting...")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ctx, cancel := context.WithCancel(context.Background())

	return watchModel{
		server:   cfg.Server,
		prefix:   cfg.Prefix,
		viewport: vp,
		spinner:  sp,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		connectCmd(m.ctx, m.server, m.prefix),
	)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
		m.refresh()

	case errMsg:
		m.err = msg
		m.cancel()
		return m, tea.Quit

	case streamReadyMsg:
		m.connected = true
		m.eventCh = msg.ch
		m.appendLine(styleSubtitle.Render("connected, waiting for events"))
		return m, waitForEvent(m.eventCh)

	case live.Event:
		m.appendLine(renderEvent(msg))
		return m, waitForEvent(m.eventCh)

	case streamClosedMsg:
		m.connected = false
		m.appendLine(styleSubtitle.Render("stream closed by server, press q to quit"))
		return m, nil
	}

	return m, tea.Batch(vpCmd, spCmd)
}

func (m watchModel) View() string {
	var s strings.Builder

	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.connected {
		s.WriteString(styleSubtitle.Render("watching " + m.server + "  (q to quit)"))
	} else {
		s.WriteString(m.spinner.View() + " Connecting...")
	}

	return s.String()
}

func (m *watchModel) appendLine(line string) {
	m.lines = append(m.lines, fmt.Sprintf("%s %s", styleSubtitle.Render(time.Now().Format("15:04:05")), line))
	m.refresh()
}

func (m *watchModel) refresh() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func renderEvent(evt live.Event) string {
	kind := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render(evt.Type)
	if evt.Type == "" {
		kind = lipgloss.NewStyle().Bold(true).Foreground(colorWarning).Render("message")
	}
	return fmt.Sprintf("%s %s", kind, styleValue.Render(string(evt.Data)))
}

// Commands

func connectCmd(ctx context.Context, server, prefix string) tea.Cmd {
	return func() tea.Msg {
		ch, err := live.Stream(ctx, server, prefix)
		if err != nil {
			return errMsg(err)
		}
		return streamReadyMsg{ch}
	}
}

func waitForEvent(ch <-chan live.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return evt
	}
}

// NewWatchCmd creates the live event watcher command.
func NewWatchCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow audit events over the live websocket feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newWatchModel(cfg), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(watchModel); ok && m.err != nil {
				return fmt.Errorf("live stream: %w", m.err)
			}
			return nil
		},
	}
}
