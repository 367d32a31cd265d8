package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mgirard/crechestat/internal/config"
	"github.com/mgirard/crechestat/internal/output"
)

var rankCmd = &cobra.Command{
	Use:   "rank <file>",
	Short: "Facility ranking by satisfaction score",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

// rankEntry is one row of the ranking, JSON-serializable for --json.
type rankEntry struct {
	Rank      int    `json:"rank"`
	Facility  string `json:"facility"`
	Score     int    `json:"score"`
	Responses int    `json:"responses"`
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	output.Init(flagNoColor, cfg.Output.Color)

	an, err := loadAndAnalyze(args[0], cfg)
	if err != nil {
		return err
	}

	var entries []rankEntry
	for name, fs := range an.Result.Facilities {
		entries = append(entries, rankEntry{
			Facility:  name,
			Score:     fs.SatisfactionScore(),
			Responses: fs.TotalResponses,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if entries[i].Responses != entries[j].Responses {
			return entries[i].Responses > entries[j].Responses
		}
		return entries[i].Facility < entries[j].Facility
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Println(output.Section("Satisfaction Ranking"))
	for _, e := range entries {
		fmt.Printf(" %2d. %s %s %s\n",
			e.Rank,
			output.StyleLabel.Render(e.Facility),
			output.ScoreBar(e.Score, 20),
			output.StyleMuted.Render(fmt.Sprintf("(%d responses)", e.Responses)))
	}
	fmt.Println()
	return nil
}
