package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phytoscan/phytoscan/internal/api"
	"github.com/phytoscan/phytoscan/internal/catalog"
	"github.com/phytoscan/phytoscan/internal/models"
)

func newDiseasesCmd() *cobra.Command {
	var (
		apiURL       string
		catalogFile  string
		search       string
		category     string
		severity     string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "diseases [id]",
		Short: "Browse the plant disease knowledge base",
		Long: `Lists the diseases the classifier can recognize, with optional
filtering by free-text search, pathogen category, and severity. Pass a
disease id to show its full record.

The catalog is fetched from the remote service by default. Pass
--catalog-file to read a local JSON, JSONL, or Parquet export instead.
If the catalog is unreachable a built-in subset is shown.`,
		Example: `  # List all diseases
  phytoscan diseases

  # Filter by search term and severity
  phytoscan diseases --search 番茄 --severity severe

  # Show one record
  phytoscan diseases tomato_early_blight

  # Read from a local export
  phytoscan diseases --catalog-file diseases.parquet`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(apiURL)

			if len(args) == 1 {
				return showDiseaseDetail(cmd, client, args[0], outputFormat)
			}

			var source catalog.Source = client
			if catalogFile != "" {
				source = catalog.NewFileSource(catalogFile)
			}

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			s.Suffix = " Loading disease catalog..."
			if outputFormat == "text" {
				s.Start()
			}
			records := catalog.Load(cmd.Context(), source)
			s.Stop()

			query := catalog.NewQuery()
			query.Term = search
			query.Category = models.ParseCategory(category)
			query.Severity = models.ParseSeverity(severity)
			matched, total := catalog.Search(records, query)

			switch outputFormat {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(map[string]any{"diseases": matched, "total": total})
			case "yaml":
				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				defer encoder.Close()
				return encoder.Encode(map[string]any{"diseases": matched, "total": total})
			case "text":
				printDiseaseList(matched, total)
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text, json, or yaml)", outputFormat)
			}
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Service base URL (default $PHYTOSCAN_API_URL or "+api.DefaultBaseURL+")")
	cmd.Flags().StringVar(&catalogFile, "catalog-file", "", "Read the catalog from a local .json, .jsonl, or .parquet file")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Free-text search on names and pathogen")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category (fungal, bacterial, oomycete, healthy)")
	cmd.Flags().StringVar(&severity, "severity", "", "Filter by severity (severe, moderate-severe, moderate, low, none)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}

func showDiseaseDetail(cmd *cobra.Command, client *api.Client, id, outputFormat string) error {
	record, err := client.Disease(cmd.Context(), id)
	if err != nil {
		fallback, ok := catalog.FallbackDetail(id)
		if !ok {
			return fmt.Errorf("disease %q not found: %w", id, err)
		}
		record = fallback
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(record)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		defer encoder.Close()
		return encoder.Encode(record)
	case "text":
		printDiseaseDetail(record)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", outputFormat)
	}
}

func printDiseaseList(records []models.DiseaseRecord, total int) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	cyan.Printf("🌿 Disease catalog (%d)\n", total)
	fmt.Println()
	for _, rec := range records {
		fmt.Printf("  %-28s %-14s %-8s %s\n", rec.ID, rec.NameZH, rec.Category.Label(), rec.Severity.Label())
	}
	fmt.Println()
}

func printDiseaseDetail(rec models.DiseaseRecord) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	cyan.Printf("🌿 %s", rec.NameZH)
	if rec.NameEN != "" {
		fmt.Printf(" (%s)", rec.NameEN)
	}
	fmt.Println()
	fmt.Println()

	fmt.Printf("ID:        %s\n", rec.ID)
	if rec.Pathogen != "" {
		fmt.Printf("Pathogen:  %s\n", rec.Pathogen)
	}
	fmt.Printf("Category:  %s\n", rec.Category.Label())
	fmt.Printf("Severity:  %s\n", rec.Severity.Label())
	if len(rec.HostPlants) > 0 {
		fmt.Printf("Hosts:     %v\n", rec.HostPlants)
	}
	if rec.Distribution != "" {
		fmt.Printf("Range:     %s\n", rec.Distribution)
	}

	printDetailList("症狀", rec.Symptoms)
	printDetailList("病因", rec.Causes)
	printDetailList("預防", rec.Prevention)
	printDetailList("治療", rec.Treatment)
	if rec.ExpertAdvice != "" {
		fmt.Println()
		fmt.Printf("專家建議: %s\n", rec.ExpertAdvice)
	}
	fmt.Println()
}

func printDetailList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
