package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgersieve/ledgersieve/internal/cli"
)

func suggestCmd() *cobra.Command {
	var (
		inputPath    string
		minFrequency int
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Mine recurring uncategorized transactions for rule candidates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if minFrequency > 0 {
				viper.Set("suggestions.min_frequency", minFrequency)
			}

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

			suggestions := eng.GenerateSuggestions(transactions)
			if len(suggestions) == 0 {
				cmd.Println(cli.SubtleStyle.Render("no recurring uncategorized patterns found"))
				return nil
			}

			cmd.Println(cli.TitleStyle.Render("Rule suggestions"))
			for _, s := range suggestions {
				cmd.Printf("%-24s %3d txns  avg %10.2f  conf %.2f  -> %s\n",
					s.MerchantPattern, s.TransactionCount, s.AverageAmount,
					s.Confidence, s.SuggestedCategory)
			}

			if !save {
				return nil
			}

			for _, s := range suggestions {
				rule := s.ToCategoryRule()
				if err := st.SaveRule(ctx, &rule); err != nil {
					return fmt.Errorf("failed to save rule for %q: %w", s.MerchantPattern, err)
				}
				cmd.Println(cli.SuccessStyle.Render(
					fmt.Sprintf("saved rule %d: %s", rule.ID, rule.Name)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "importer output (JSON transaction records)")
	cmd.Flags().IntVar(&minFrequency, "min-frequency", 0, "minimum group size for a suggestion (default 3)")
	cmd.Flags().BoolVar(&save, "save", false, "persist suggestions as rules")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
