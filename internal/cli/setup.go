package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/globallingo/lingo/internal/domain"
)

func init() {
	setupCmd.Flags().StringVar(&setupAvatar, "avatar", "", "Starter avatar (default 🌍)")
	rootCmd.AddCommand(setupCmd)
}

var setupAvatar string

var setupCmd = &cobra.Command{
	Use:   "setup NAME",
	Short: "Create your player profile",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	sum, notifs, err := d.Session.Setup(cmd.Context(), strings.Join(args, " "), domain.AvatarID(setupAvatar))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Welcome, %s %s! +%d XP\n", sum.Profile.Avatar, sum.Profile.Name, sum.XP)
	printNotifications(out, notifs)
	return nil
}
