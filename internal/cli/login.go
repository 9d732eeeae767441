package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check in for today and collect the streak bonus",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	res, err := d.Session.Login(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.XPGained == 0 {
		fmt.Fprintf(out, "Already checked in today. Streak: %d days\n", res.Streak.Days)
		return nil
	}
	fmt.Fprintf(out, "Streak: %d days, +%d XP\n", res.Streak.Days, res.XPGained)
	printNotifications(out, res.Notifications)
	return nil
}
