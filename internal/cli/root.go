// Package cli implements the Lingo command-line interface using Cobra.
// Each subcommand maps to one progression operation (setup, login,
// translate, status and so on) against the local state store.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/globallingo/lingo/internal/daemon"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}

var rootCmd = &cobra.Command{
	Use:   "lingo",
	Short: "Lingo, a translation game with streaks, XP and badges",
	Long: `Lingo turns everyday phrase lookups into a game.
Translate phrases to earn XP, keep a daily streak going, level up,
unlock more languages and avatars, and collect badges.

State lives in ~/.lingo (override with LINGO_HOME).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openDaemon loads the config, applies overrides and wires the services.
// One-shot commands log at warn so notifications don't echo to stderr.
func openDaemon(oneShot bool, override func(*daemon.Config)) (*daemon.Daemon, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return nil, err
	}
	switch {
	case verbose:
		cfg.Logging.Level = "debug"
	case oneShot:
		cfg.Logging.Level = "warn"
	}
	if override != nil {
		override(&cfg)
	}
	return daemon.NewWithConfig(cfg)
}
