package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgirard/crechestat/internal/analyzer"
	"github.com/mgirard/crechestat/internal/config"
	"github.com/mgirard/crechestat/internal/export"
	"github.com/mgirard/crechestat/internal/output"
	"github.com/mgirard/crechestat/internal/quality"
)

var (
	analyzeFacility string
	analyzeExport   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Full per-facility report from a survey export",
	Long: `Analyze a survey spreadsheet (XLSX/CSV) or a previously exported JSON
snapshot, and render per-establishment statistics: satisfaction score,
demographic distributions, and every question's tallies or verbatim
answers.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFacility, "facility", "", "Only report this establishment")
	analyzeCmd.Flags().StringVar(&analyzeExport, "export", "", "Also write a JSON snapshot to this path")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	output.Init(flagNoColor, cfg.Output.Color)

	an, err := loadAndAnalyze(args[0], cfg)
	if err != nil {
		return err
	}
	res := an.Result

	if analyzeFacility != "" {
		fs, ok := res.Facilities[analyzeFacility]
		if !ok {
			return fmt.Errorf("unknown establishment %q", analyzeFacility)
		}
		res = &analyzer.Result{
			Facilities:          map[string]*analyzer.FacilityStats{analyzeFacility: fs},
			Responses:           res.Responses,
			Mapping:             res.Mapping,
			DroppedUnidentified: res.DroppedUnidentified,
		}
	}

	snap := export.Build(res)
	if analyzeExport != "" {
		if err := export.Write(analyzeExport, snap); err != nil {
			return err
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	if flagVerbose && !an.FromSnapshot {
		renderMapping(res.Mapping)
	}

	renderSummary(snap.Summary)
	for _, name := range res.OrderedFacilities() {
		renderFacility(res.Facilities[name], cfg.OpenAnswerLimit)
	}

	if !an.FromSnapshot {
		warnings := quality.NewEngine().Run(&quality.Context{
			Result:      res,
			Vocabulary:  an.Vocabulary,
			LookupSize:  an.LookupSize,
			LookupError: an.LookupError,
		})
		renderWarnings(warnings)
	}

	return nil
}

func renderMapping(m analyzer.ColumnMapping) {
	fmt.Println(output.Section("Column Mapping"))
	for _, field := range []kvPair{
		{"Date", m.Date},
		{"Establishment", m.Facility},
		{"Gender", m.Gender},
		{"Age", m.Age},
		{"Socio-professional", m.CSP},
		{"Satisfaction", m.Satisfaction},
	} {
		col := "not found"
		if field.value >= 0 {
			col = fmt.Sprintf("column %d", field.value)
		}
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render(field.key),
			output.StyleMuted.Render(col))
	}
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Manager columns"),
		output.StyleMuted.Render(fmt.Sprintf("%d", len(m.Managers))))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Checkbox groups"),
		output.StyleMuted.Render(fmt.Sprintf("%d", len(m.Groups))))
	fmt.Println()
}

func renderSummary(s export.Summary) {
	fmt.Println(output.Section("Overview"))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Responses"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.TotalResponses)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Establishments"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.FacilityCount)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Satisfaction"),
		output.ScoreBar(s.SatisfactionRate, 20))

	if s.DateFrom != nil && s.DateTo != nil {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Period"),
			output.StyleMuted.Render(fmt.Sprintf("%s — %s",
				s.DateFrom.Format("02/01/2006"), s.DateTo.Format("02/01/2006"))))
	}
	fmt.Println()
}

func renderFacility(fs *analyzer.FacilityStats, openLimit int) {
	fmt.Println(output.Section(fs.Facility))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Responses"),
		output.StyleValue.Render(fmt.Sprintf("%d", fs.TotalResponses)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Satisfaction"),
		output.ScoreBar(fs.SatisfactionScore(), 20))

	renderTally(" Satisfaction distribution:", fs.Satisfaction)
	renderTally(" Managers:", fs.Managers)
	renderTally(" Gender:", fs.Genders)
	renderCSP(fs)

	for _, qs := range fs.OrderedQuestions() {
		renderQuestion(qs, openLimit)
	}
	fmt.Println()
}

func renderTally(title string, tally map[string]int) {
	if len(tally) == 0 {
		return
	}
	fmt.Printf("\n %s\n", output.StyleMuted.Render(title))
	for _, kv := range sortTally(tally) {
		fmt.Printf("   %s %s\n",
			output.StyleLabel.Render(kv.key),
			output.StyleValue.Render(fmt.Sprintf("%d", kv.value)))
	}
}

func renderCSP(fs *analyzer.FacilityStats) {
	if len(fs.CSP) == 0 {
		return
	}
	fmt.Printf("\n %s\n", output.StyleMuted.Render(" Socio-professional categories:"))
	for _, kv := range sortTally(fs.CSP) {
		pct := ""
		if p, ok := fs.CSPPercentages[kv.key]; ok {
			pct = output.StyleMuted.Render(fmt.Sprintf("(%d%%)", p))
		}
		fmt.Printf("   %s %s %s\n",
			output.StyleLabel.Render(kv.key),
			output.StyleValue.Render(fmt.Sprintf("%d", kv.value)),
			pct)
	}
}

func renderQuestion(qs *analyzer.QuestionStats, openLimit int) {
	kind := "closed"
	switch {
	case qs.IsMultiOptions:
		kind = "multi-option"
	case qs.IsOpenQuestion:
		kind = "open"
	}

	fmt.Printf("\n %s %s\n",
		output.StyleBold.Render(qs.Question),
		output.StyleMuted.Render(fmt.Sprintf("(%s, %d answers)", kind, qs.TotalResponses)))

	if qs.IsOpenQuestion && !qs.IsMultiOptions {
		shown := qs.ResponsesList
		if len(shown) > openLimit {
			shown = shown[:openLimit]
		}
		for _, entry := range shown {
			fmt.Printf("   %s %s\n",
				output.StyleMuted.Render(fmt.Sprintf("#%d", entry.RespondentID)),
				entry.Answer)
		}
		if hidden := len(qs.ResponsesList) - len(shown); hidden > 0 {
			fmt.Printf("   %s\n", output.StyleMuted.Render(fmt.Sprintf("… %d more", hidden)))
		}
		return
	}

	table := output.NewTable("Answer", "Count")
	for _, kv := range sortTally(qs.Answers) {
		table.AddRow(kv.key, fmt.Sprintf("%d", kv.value))
	}
	fmt.Print(indent(table.Render(), "   "))
}

func renderWarnings(warnings []quality.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println(output.Section("Data Quality"))
	for _, w := range warnings {
		style := output.StyleMuted
		if w.Severity == quality.SeverityHigh {
			style = output.StyleError
		} else if w.Severity == quality.SeverityMedium {
			style = output.StyleWarning
		}
		fmt.Printf(" %s %s\n", style.Render("⚠ "+w.Category+":"), w.Message)
	}
	fmt.Println()
}
