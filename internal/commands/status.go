package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zab-bid-org/zabcli/internal/client"
	"github.com/zab-bid-org/zabcli/internal/render"
)

// NewStatusCmd creates the bootstrap status check command.
func NewStatusCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the service is reachable and bootstrapped",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := client.New(cfg.Server, cfg.Token, cfg.Timeout, newLogger(cfg.LogLevel))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			path := strings.TrimRight(cfg.Prefix, "/") + "/bootstrap/status"
			status, body, err := cli.Get(ctx, path, client.Params{})
			if err != nil {
				return err
			}
			if status != 200 {
				return fmt.Errorf("server returned %d: %s", status, string(body))
			}

			render.Response(os.Stdout, status, body)
			return nil
		},
	}
}
