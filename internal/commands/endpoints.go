package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zab-bid-org/zabcli/internal/catalog"
)

// NewEndpointsCmd creates the endpoint listing command.
func NewEndpointsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the API endpoints the console knows about",
		Run: func(cmd *cobra.Command, args []string) {
			styleGet := lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
			stylePost := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

			for _, ep := range catalog.New(cfg.Prefix).List() {
				style := stylePost
				if ep.Method == "GET" {
					style = styleGet
				}
				fmt.Fprintf(os.Stdout, "%2s. %s %-44s %s\n",
					ep.Key,
					style.Render(fmt.Sprintf("%-4s", ep.Method)),
					ep.Path,
					styleSubtitle.Render(ep.Name))
			}
		},
	}
}
