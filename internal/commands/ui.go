package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#FF6B35") // Orange accent
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorText    = lipgloss.Color("#E5E7EB") // Light gray

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000")).
			Background(colorPrimary).
			Padding(0, 1)

	styleValue = lipgloss.NewStyle().
			Foreground(colorText)

	styleCommand = lipgloss.NewStyle().
			Foreground(colorWarning).
			Italic(true)
)

// WelcomeInfo holds information displayed at startup.
type WelcomeInfo struct {
	Version string
	Server  string
	Prefix  string
	HasAuth bool
}

// RenderWelcome renders the console welcome screen.
func RenderWelcome(info WelcomeInfo) string {
	var b strings.Builder

	logo := `
 _____  _    ____     ____ _     ___
|__  / / \  | __ )   / ___| |   |_ _|
  / / / _ \ |  _ \  | |   | |    | |
 / /_/ ___ \| |_) | | |___| |___ | |
/____/_/   \_\____/   \____|_____|___|
`
	b.WriteString(styleTitle.Render(logo))
	b.WriteString("\n")

	b.WriteString(styleBadge.Render(fmt.Sprintf("v%s", info.Version)))
	b.WriteString("  ")
	b.WriteString(styleSubtitle.Render("ZAB Bidding Service Console"))
	b.WriteString("\n\n")

	b.WriteString(styleSubtitle.Render("  Server: "))
	b.WriteString(styleValue.Render(info.Server))
	b.WriteString("\n")

	if info.Prefix != "" {
		b.WriteString(styleSubtitle.Render("  Prefix: "))
		b.WriteString(styleValue.Render(info.Prefix))
		b.WriteString("\n")
	}

	b.WriteString(styleSubtitle.Render("  Auth:   "))
	if info.HasAuth {
		b.WriteString(lipgloss.NewStyle().Foreground(colorSuccess).Render("session token set"))
	} else {
		b.WriteString(styleValue.Render("anonymous"))
	}
	b.WriteString("\n\n")

	b.WriteString(styleSubtitle.Render("  Pick an endpoint by number. Ctrl-D or Ctrl-C exits."))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render("  Other commands: "))
	b.WriteString(styleCommand.Render("zabcli endpoints"))
	b.WriteString(styleSubtitle.Render("  "))
	b.WriteString(styleCommand.Render("zabcli status"))
	b.WriteString(styleSubtitle.Render("  "))
	b.WriteString(styleCommand.Render("zabcli watch"))
	b.WriteString("\n")

	b.WriteString(styleSubtitle.Render(strings.Repeat("─", 60)))
	b.WriteString("\n")

	return b.String()
}
