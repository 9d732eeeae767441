package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	notificationsCmd.Flags().BoolVar(&notificationsAck, "ack", false, "Mark listed notifications as shown")
	rootCmd.AddCommand(notificationsCmd)
}

var notificationsAck bool

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"inbox"},
	Short:   "Show pending notifications",
	Args:    cobra.NoArgs,
	RunE:    runNotifications,
}

func runNotifications(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	notifs, err := d.Session.Pending(ctx, 0)
	if err != nil {
		return err
	}
	if len(notifs) == 0 {
		fmt.Fprintln(out, "No new notifications.")
		return nil
	}

	for _, n := range notifs {
		fmt.Fprintf(out, "%s  %s\n", n.CreatedAt.Local().Format("2006-01-02 15:04"), n.Message)
		if notificationsAck {
			if err := d.Session.MarkShown(ctx, n.ID); err != nil {
				return fmt.Errorf("mark notification %d: %w", n.ID, err)
			}
		}
	}
	return nil
}
