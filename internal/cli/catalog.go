package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(languagesCmd)
}

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges and which ones you've earned",
	Args:  cobra.NoArgs,
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	badges, err := d.Session.Badges(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tNAME\tEARNED")
	for _, b := range badges {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Icon, b.Name, yesNo(b.Earned))
	}
	return w.Flush()
}

var languagesCmd = &cobra.Command{
	Use:     "languages",
	Aliases: []string{"langs"},
	Short:   "List languages and which ones are unlocked",
	Args:    cobra.NoArgs,
	RunE:    runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	langs, err := d.Session.Languages(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tUNLOCKED")
	for _, l := range langs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.Code, l.Name, yesNo(l.Unlocked))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
