package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phytoscan",
		Short: "Plant disease identification from leaf photos",
		Long: `PhytoScan identifies plant diseases from leaf photos using a remote
image classifier, and ships a browsable knowledge base of the diseases
it can recognize.

When the classifier is unreachable, diagnosis degrades to a clearly
labeled demo result so the full result view stays usable offline.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newIdentifyCmd())
	cmd.AddCommand(newDiseasesCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
