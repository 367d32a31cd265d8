package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgirard/crechestat/internal/config"
	"github.com/mgirard/crechestat/internal/export"
	"github.com/mgirard/crechestat/internal/output"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the analysis as a reloadable JSON snapshot",
	Long: `Run the full pipeline on a survey export and write the result as a JSON
snapshot ({summary, etablissements, rawResponses}). Snapshots can be fed
back to any command in place of the original spreadsheet.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "crechestat.json", "Snapshot output path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	output.Init(flagNoColor, cfg.Output.Color)

	an, err := loadAndAnalyze(args[0], cfg)
	if err != nil {
		return err
	}

	snap := export.Build(an.Result)
	if err := export.Write(exportOut, snap); err != nil {
		return err
	}

	fmt.Printf("%s %s\n",
		output.StyleSuccess.Render("Snapshot written:"),
		exportOut)
	fmt.Printf("%s\n",
		output.StyleMuted.Render(fmt.Sprintf("%d responses, %d establishments, satisfaction %d%%",
			snap.Summary.TotalResponses, snap.Summary.FacilityCount, snap.Summary.SatisfactionRate)))
	return nil
}
