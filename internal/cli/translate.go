package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/globallingo/lingo/internal/domain"
)

func init() {
	translateCmd.Flags().StringVarP(&translateFrom, "from", "f", "en", "Source language code")
	translateCmd.Flags().StringVarP(&translateTo, "to", "t", "", "Target language code")
	translateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(translateCmd)
}

var (
	translateFrom string
	translateTo   string
)

var translateCmd = &cobra.Command{
	Use:     "translate TEXT",
	Aliases: []string{"tr"},
	Short:   "Translate a phrase and earn XP",
	Example: `  lingo translate --to es "good morning"
  lingo tr -f en -t ja thank you`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	res, err := d.Session.Translate(cmd.Context(),
		domain.LanguageCode(translateFrom), domain.LanguageCode(translateTo), strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Record.ResultText)
	fmt.Fprintf(out, "  %s\n", res.Quip)
	fmt.Fprintf(out, "  +%d XP\n", res.XPGained)
	printNotifications(out, res.Notifications)
	return nil
}
