package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phytoscan/phytoscan/internal/api"
)

func newStatsCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show service statistics",
		Long: `Shows the aggregate counters reported by the identification
service. Placeholder numbers are shown when the service is unreachable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(apiURL)

			stats, err := client.Stats(cmd.Context())
			if err != nil {
				slog.Warn("Stats endpoint unavailable, showing placeholder values", "error", err)
				stats = api.PlaceholderStats()
			}

			cyan := color.New(color.FgCyan, color.Bold)
			fmt.Println()
			cyan.Println("🌿 PhytoScan statistics")
			fmt.Println()
			fmt.Printf("Diseases:        %d\n", stats.TotalDiseases)
			fmt.Printf("Identifications: %d\n", stats.TotalIdentifications)
			fmt.Printf("Accuracy:        %s\n", stats.Accuracy)
			if stats.ModelVersion != "" {
				fmt.Printf("Model:           %s\n", stats.ModelVersion)
			}
			if stats.Dataset != "" {
				fmt.Printf("Dataset:         %s\n", stats.Dataset)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Service base URL (default $PHYTOSCAN_API_URL or "+api.DefaultBaseURL+")")

	return cmd
}
