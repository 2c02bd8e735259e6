package main

import (
	"github.com/spf13/cobra"

	"github.com/ledgersieve/ledgersieve/internal/cli"
	"github.com/ledgersieve/ledgersieve/internal/config"
)

func reportCmd() *cobra.Command {
	var (
		inputPath string
		outDir    string
		detail    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Classify a batch and export the diagnostic report",
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

			result, err := eng.ClassifyBatch(ctx, transactions)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = config.DefaultDataDir()
			}
			path, err := result.Report.WriteFile(outDir, parseLevel(detail))
			if err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render("report written to " + path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "importer output (JSON transaction records)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: data dir)")
	cmd.Flags().StringVar(&detail, "detail", "detailed", "report detail (summary, detailed, verbose)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
