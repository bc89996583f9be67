package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phytoscan/phytoscan/internal/advisor"
	"github.com/phytoscan/phytoscan/internal/api"
	"github.com/phytoscan/phytoscan/internal/models"
	"github.com/phytoscan/phytoscan/internal/result"
	"github.com/phytoscan/phytoscan/internal/session"
)

func newIdentifyCmd() *cobra.Command {
	var (
		apiURL       string
		outputFormat string
		advise       bool
		advisorName  string
	)

	cmd := &cobra.Command{
		Use:   "identify <image>",
		Short: "Identify a plant disease from a leaf photo",
		Long: `Uploads a leaf photo to the classifier and prints the diagnosis:
the primary disease with confidence, the top-3 candidates, and the
probability distribution.

Supported formats are JPEG, PNG, WEBP, HEIC, and GIF, up to 20MB.
If the classifier is unreachable the command prints a clearly labeled
demo result instead of failing.`,
		Example: `  # Identify a disease from a photo
  phytoscan identify leaf.jpg

  # Machine-readable output
  phytoscan identify leaf.jpg --output json

  # Include treatment advice (set GEMINI_API_KEY for AI advice)
  phytoscan identify leaf.jpg --advise --advisor gemini`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(apiURL)

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			controller := session.New(client, session.WithProgressFunc(func(p float64) {
				s.Suffix = fmt.Sprintf(" Analyzing image... %.0f%%", p)
			}))

			if err := controller.SelectFile(args[0]); err != nil {
				return err
			}

			if outputFormat == "text" {
				s.Suffix = " Analyzing image..."
				s.Start()
			}
			outcome, err := controller.Submit(cmd.Context())
			s.Stop()
			if err != nil {
				return err
			}

			var advice *advisor.Advice
			if advise {
				a, err := adviseOutcome(cmd, advisorName, outcome.Result)
				if err != nil {
					return err
				}
				advice = a
			}

			switch outputFormat {
			case "json":
				return printJSON(cmd, outcome.Result, advice)
			case "yaml":
				return printYAML(cmd, outcome.Result, advice)
			case "text":
				printResult(outcome.Result)
				if advice != nil {
					printAdvice(*advice)
				}
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text, json, or yaml)", outputFormat)
			}
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Classifier base URL (default $PHYTOSCAN_API_URL or "+api.DefaultBaseURL+")")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, or yaml")
	cmd.Flags().BoolVar(&advise, "advise", false, "Include treatment advice in the output")
	cmd.Flags().StringVar(&advisorName, "advisor", "", "Advice provider: static or gemini (default $PHYTOSCAN_ADVISOR or static)")

	return cmd
}

func adviseOutcome(cmd *cobra.Command, name string, res models.DiagnosticResult) (*advisor.Advice, error) {
	record := res.Detail
	if record == nil {
		record = &models.DiseaseRecord{
			ID:       res.Primary.DiseaseID,
			NameZH:   res.Primary.DiseaseName,
			Severity: res.Primary.Severity,
		}
	}
	advice, err := advisor.New(name).Advise(cmd.Context(), *record, res.Primary.Confidence)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advice: %w", err)
	}
	return &advice, nil
}

type identifyOutput struct {
	Result models.DiagnosticResult `json:"result" yaml:"result"`
	Advice *advisor.Advice         `json:"advice,omitempty" yaml:"advice,omitempty"`
}

func printJSON(cmd *cobra.Command, res models.DiagnosticResult, advice *advisor.Advice) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(identifyOutput{Result: res, Advice: advice})
}

func printYAML(cmd *cobra.Command, res models.DiagnosticResult, advice *advisor.Advice) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	defer encoder.Close()
	return encoder.Encode(identifyOutput{Result: res, Advice: advice})
}

func printResult(res models.DiagnosticResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	fmt.Println()
	cyan.Println("🌿 PhytoScan Diagnosis")
	if res.Mode == models.ModeDemoFallback {
		yellow.Println("⚠ Classifier unreachable: showing a demo result, not a real diagnosis")
	}
	fmt.Println()

	tier := result.Risk(res.Primary.Severity)
	fmt.Printf("Primary:    %s (%s)\n", res.Primary.DiseaseName, res.Primary.DiseaseID)
	fmt.Printf("Confidence: %.1f%%\n", res.Primary.Confidence*100)
	fmt.Printf("Severity:   %s\n", res.Primary.Severity.Label())
	fmt.Printf("Risk:       %s %s\n", riskColor(tier).Sprint(tier.Label()), riskBar(tier))
	fmt.Printf("Elapsed:    %.2fs\n", res.ElapsedSec)

	if len(res.Top3) > 1 {
		fmt.Println()
		cyan.Println("Top candidates")
		for i, p := range res.Top3 {
			fmt.Printf("  %d. %-20s %.1f%%\n", i+1, p.DiseaseName, p.Confidence*100)
		}
	}

	if len(res.Distribution) > 0 {
		fmt.Println()
		cyan.Println("Probability distribution")
		for _, point := range res.Distribution {
			fmt.Printf("  %-20s %5.1f%%\n", point.Label, point.Value)
		}
	}

	if res.Detail != nil && len(res.Detail.Symptoms) > 0 {
		fmt.Println()
		cyan.Println("Symptom match")
		for _, match := range result.SymptomMatches(res.Primary.Confidence, res.Detail.Symptoms) {
			fmt.Printf("  %-24s %5.1f%%\n", match.Symptom, match.Percent)
		}
	}
	fmt.Println()
}

func printAdvice(advice advisor.Advice) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("Treatment advice")
	fmt.Printf("  %s\n", advice.Summary)
	printAdviceList("立即處置", advice.Immediate)
	printAdviceList("預防措施", advice.Preventive)
	printAdviceList("長期管理", advice.LongTerm)
	fmt.Println()
}

func printAdviceList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s:\n", title)
	for _, item := range items {
		fmt.Printf("    - %s\n", item)
	}
}

func riskColor(tier result.RiskTier) *color.Color {
	switch tier {
	case result.TierHigh:
		return color.New(color.FgRed, color.Bold)
	case result.TierMid:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

func riskBar(tier result.RiskTier) string {
	width := tier.BarWidth() / 10
	return "[" + strings.Repeat("█", width) + strings.Repeat("░", 10-width) + "]"
}
