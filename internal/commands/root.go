package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zab-bid-org/zabcli/internal/catalog"
)

const defaultServer = "http://127.0.0.1:8080"

// Config holds CLI runtime configuration.
type Config struct {
	Server   string        `mapstructure:"server"`
	Prefix   string        `mapstructure:"prefix"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log-level"`
}

// NewRootCmd builds the root command with shared flags. Running zabcli
// without a subcommand enters the interactive console.
func NewRootCmd() *cobra.Command {
	cobra.OnInitialize(initConfig)

	cfg := &Config{
		Server: defaultServer,
		Prefix: catalog.DefaultPrefix,
	}

	cmd := &cobra.Command{
		Use:           "zabcli",
		Short:         "Interactive client for the ZAB bidding service API",
		Long:          "Interactive operator console for the ZAB seniority bidding service HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Reload config into struct
			return viper.Unmarshal(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runConsole(cfg)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringP("server", "s", defaultServer, "Service base URL")
	cmd.PersistentFlags().String("prefix", catalog.DefaultPrefix, "API path prefix (empty for servers mounted at the root)")
	cmd.PersistentFlags().String("token", "", "Session token sent as a bearer credential")
	cmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (0 waits indefinitely)")
	cmd.PersistentFlags().String("log-level", "info", "File log verbosity")

	viper.BindPFlag("server", cmd.PersistentFlags().Lookup("server"))
	viper.BindPFlag("prefix", cmd.PersistentFlags().Lookup("prefix"))
	viper.BindPFlag("token", cmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("timeout", cmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(NewEndpointsCmd(cfg))
	cmd.AddCommand(NewStatusCmd(cfg))
	cmd.AddCommand(NewWatchCmd(cfg))
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewAuthCmd())

	return cmd
}

func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	// Search config in ~/.zabcli
	viper.AddConfigPath(filepath.Join(home, ".zabcli"))
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	viper.SetEnvPrefix("ZABCLI")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	viper.ReadInConfig()
}
