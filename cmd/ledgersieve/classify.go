package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ledgersieve/ledgersieve/internal/cli"
	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/engine"
	"github.com/ledgersieve/ledgersieve/internal/model"
	"github.com/ledgersieve/ledgersieve/internal/report"
)

func classifyCmd() *cobra.Command {
	var (
		inputPath string
		exportDir string
		detail    string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify imported transactions against the rule set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			eng, err := buildEngine(ctx, st)
			if err != nil {
				return err
			}

			transactions, err := loadTransactions(inputPath)
			if err != nil {
				return err
			}

			result, err := runClassification(cmd, eng, transactions)
			if err != nil {
				return err
			}

			// Persist hit accounting for matched rules. Catalog-file rules
			// have no database row, so misses are expected for them.
			for _, c := range result.Classifications {
				err := st.RecordRuleMatch(ctx, c.RuleID, time.Now())
				if err != nil && !errors.Is(err, common.ErrNotFound) {
					return fmt.Errorf("failed to record match for rule %d: %w", c.RuleID, err)
				}
			}

			level := parseLevel(detail)
			cmd.Println(result.Report.Render(level))

			if exportDir != "" {
				path, err := result.Report.WriteFile(exportDir, level)
				if err != nil {
					return err
				}
				cmd.Println(cli.SubtleStyle.Render("report written to " + path))
			}

			if len(result.Unmatched) > 0 {
				cmd.Println(cli.WarningStyle.Render(fmt.Sprintf(
					"%d transactions uncategorized; run 'ledgersieve suggest' to mine rule candidates",
					len(result.Unmatched))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "importer output (JSON transaction records)")
	cmd.Flags().StringVar(&exportDir, "export", "", "directory to export the report to")
	cmd.Flags().StringVar(&detail, "detail", "summary", "report detail (summary, detailed, verbose)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runClassification runs the batch in the background and animates a spinner
// until it completes; the pipeline itself exposes no progress callbacks.
func runClassification(cmd *cobra.Command, eng *engine.Engine, transactions []model.Transaction) (*engine.BatchResult, error) {
	var (
		result *engine.BatchResult
		runErr error
	)
	done := make(chan struct{})
	go func() {
		result, runErr = eng.ClassifyBatch(cmd.Context(), transactions)
		close(done)
	}()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("classifying %d transactions", len(transactions))),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
	)
	for {
		select {
		case <-done:
			_ = bar.Finish()
			cmd.Println()
			return result, runErr
		case <-time.After(80 * time.Millisecond):
			_ = bar.Add(1)
		}
	}
}

func parseLevel(detail string) report.Level {
	switch detail {
	case "verbose":
		return report.LevelVerbose
	case "detailed":
		return report.LevelDetailed
	default:
		return report.LevelSummary
	}
}
