package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "Number of entries (0 for all)")
	rootCmd.AddCommand(logCmd)
}

var logLimit int

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"history"},
	Short:   "Show recent translations, most recent first",
	Args:    cobra.NoArgs,
	RunE:    runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(true, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	records, err := d.Session.Log(cmd.Context(), logLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No translations yet. Run 'lingo translate --to es hello' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tFROM\tTO\tTEXT\tRESULT")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			r.FromLanguage,
			r.ToLanguage,
			r.SourceText,
			r.ResultText,
		)
	}
	return w.Flush()
}
