package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgirard/crechestat/internal/analyzer"
	"github.com/mgirard/crechestat/internal/config"
	"github.com/mgirard/crechestat/internal/output"
)

var globalCmd = &cobra.Command{
	Use:   "global <file>",
	Short: "Cross-facility statistics, grouped by manager",
	Long: `Merge every establishment's statistics into global figures: overall
satisfaction, demographic distributions, per-manager roll-ups, and each
question's answers merged across establishments.`,
	Args: cobra.ExactArgs(1),
	RunE: runGlobal,
}

func init() {
	rootCmd.AddCommand(globalCmd)
}

func runGlobal(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	output.Init(flagNoColor, cfg.Output.Color)

	an, err := loadAndAnalyze(args[0], cfg)
	if err != nil {
		return err
	}

	gs := analyzer.AggregateGlobal(an.Result.Facilities, an.Vocabulary)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(gs)
	}

	renderGlobal(gs, cfg.OpenAnswerLimit)
	return nil
}

func renderGlobal(gs *analyzer.GlobalStats, openLimit int) {
	fmt.Println(output.Section("All Establishments"))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Responses"),
		output.StyleValue.Render(fmt.Sprintf("%d", gs.TotalResponses)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Establishments"),
		output.StyleValue.Render(fmt.Sprintf("%d", gs.FacilityCount)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Satisfaction"),
		output.ScoreBar(gs.SatisfactionScore(), 20))

	renderTally(" Satisfaction distribution:", gs.Satisfaction)
	renderTally(" Gender:", gs.Genders)

	fmt.Println(output.Section("By Manager"))
	table := output.NewTable("Manager", "Establishments", "Responses", "Satisfaction")
	for _, ms := range gs.OrderedManagers() {
		table.AddRow(
			ms.Manager,
			fmt.Sprintf("%d", ms.Facilities),
			fmt.Sprintf("%d", ms.TotalResponses),
			fmt.Sprintf("%d%%", ms.SatisfactionScore()),
		)
	}
	fmt.Print(indent(table.Render(), " "))

	fmt.Println(output.Section("Questions Across Establishments"))
	for _, gq := range gs.OrderedQuestions() {
		fmt.Printf("\n %s %s\n",
			output.StyleBold.Render(gq.Question),
			output.StyleMuted.Render(fmt.Sprintf("(%d answers, %d establishments)",
				gq.TotalResponses, gq.EstablishmentCount)))

		if gq.IsOpenQuestion && !gq.IsMultiOptions {
			shown := gq.ResponsesList
			if len(shown) > openLimit {
				shown = shown[:openLimit]
			}
			for _, entry := range shown {
				fmt.Printf("   %s %s\n",
					output.StyleMuted.Render(fmt.Sprintf("[%s]", entry.Manager)),
					entry.Answer)
			}
			if hidden := len(gq.ResponsesList) - len(shown); hidden > 0 {
				fmt.Printf("   %s\n", output.StyleMuted.Render(fmt.Sprintf("… %d more", hidden)))
			}
			continue
		}

		qTable := output.NewTable("Answer", "Count")
		for _, kv := range sortTally(gq.Answers) {
			qTable.AddRow(kv.key, fmt.Sprintf("%d", kv.value))
		}
		fmt.Print(indent(qTable.Render(), "   "))
	}
	fmt.Println()
}
