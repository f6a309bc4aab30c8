package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the saved session token",
	}

	cmd.AddCommand(newTokenCmd())
	cmd.AddCommand(newClearCmd())
	return cmd
}

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Save a session token for bearer authentication",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)
			fmt.Print("Enter session token: ")
			token, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			token = strings.TrimSpace(token)

			if token == "" {
				fmt.Println("Warning: Saving an empty token. Requests will go out unauthenticated.")
			}

			viper.Set("token", token)

			if err := writeConfig(); err != nil {
				return err
			}

			fmt.Println("Token saved.")
			return nil
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the saved session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")

			if err := writeConfig(); err != nil {
				return err
			}

			fmt.Println("Token cleared.")
			return nil
		},
	}
}

// writeConfig persists the current viper state to ~/.zabcli/config.yaml.
func writeConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("fail to get home dir: %w", err)
	}
	configDir := filepath.Join(home, ".zabcli")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("fail to create config dir: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", configFile, err)
	}
	return nil
}
