package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/zab-bid-org/zabcli/internal/catalog"
	"github.com/zab-bid-org/zabcli/internal/client"
	"github.com/zab-bid-org/zabcli/internal/console"
	"github.com/zab-bid-org/zabcli/internal/logging"
	"github.com/zab-bid-org/zabcli/internal/prompt"
	"github.com/zab-bid-org/zabcli/internal/session"
)

// runConsole starts the interactive endpoint console against cfg.Server.
func runConsole(cfg *Config) error {
	log := newLogger(cfg.LogLevel)

	c, err := client.New(cfg.Server, cfg.Token, cfg.Timeout, log)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	// Ctrl-C leaves the console the same way a closed stdin does.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Println("\nExiting.")
		os.Exit(0)
	}()

	fmt.Print(RenderWelcome(WelcomeInfo{
		Version: Version,
		Server:  cfg.Server,
		Prefix:  cfg.Prefix,
		HasAuth: cfg.Token != "",
	}))

	con := console.New(c, catalog.New(cfg.Prefix), prompt.New(os.Stdin, os.Stdout), session.New(), os.Stdout, log)
	return con.Run(context.Background())
}

// newLogger opens the file logger under ~/.zabcli. Console output stays
// clean; request traces land in the log file only.
func newLogger(level string) *logrus.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return logging.Discard()
	}
	log, err := logging.New(filepath.Join(home, ".zabcli", "logs"), level)
	if err != nil {
		return logging.Discard()
	}
	return log
}
