package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/globallingo/lingo/internal/daemon"
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveMetrics, "metrics", false, "Expose /metrics (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var (
	serveHost    string
	servePort    int
	serveMetrics bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Lingo API server",
	Long:  `Start the JSON API server at localhost:8421.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(false, func(cfg *daemon.Config) {
		if serveHost != "" {
			cfg.API.Host = serveHost
		}
		if servePort > 0 {
			cfg.API.Port = servePort
		}
		if serveMetrics {
			cfg.Telemetry.Prometheus = true
		}
	})
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Serve(context.Background())
}
