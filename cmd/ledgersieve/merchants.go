package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgersieve/ledgersieve/internal/cli"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

func merchantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merchants",
		Short: "Inspect and extend the merchant catalog",
	}
	cmd.AddCommand(merchantsIdentifyCmd())
	cmd.AddCommand(merchantsAddCmd())
	cmd.AddCommand(merchantsListCmd())
	return cmd
}

func merchantsIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <description>",
		Short: "Resolve a raw transaction description to a catalog merchant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			match := eng.IdentifyMerchant(args[0])
			if match == nil {
				cmd.Println(cli.SubtleStyle.Render("no merchant match"))
				return nil
			}

			cmd.Printf("%s\n", cli.BoldStyle.Render(match.Merchant.CanonicalName))
			cmd.Printf("  category:   %s\n", match.Merchant.Category)
			cmd.Printf("  match type: %s\n", match.MatchType)
			cmd.Printf("  matched:    %s\n", match.MatchedPattern)
			cmd.Printf("  confidence: %.2f\n", match.Confidence)
			return nil
		},
	}
}

func merchantsAddCmd() *cobra.Command {
	var (
		name     string
		category string
		aliases  []string
		patterns []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom merchant to the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			m := model.Merchant{
				ID:            strings.ToLower(strings.ReplaceAll(name, " ", "-")),
				CanonicalName: name,
				Category:      category,
				Aliases:       aliases,
				Patterns:      patterns,
			}
			if err := st.SaveCustomMerchant(ctx, m); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("added merchant %q", name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "canonical merchant name")
	cmd.Flags().StringVar(&category, "category", "", "category name")
	cmd.Flags().StringSliceVar(&aliases, "alias", nil, "alias (repeatable)")
	cmd.Flags().StringSliceVar(&patterns, "pattern", nil, "match pattern (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func merchantsListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog merchants",
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

			if category != "" {
				for _, m := range eng.Identifier().MerchantsInCategory(category) {
					cmd.Printf("%-28s %s\n", m.CanonicalName, m.Category)
				}
				return nil
			}

			cmd.Println(cli.SubtleStyle.Render(
				fmt.Sprintf("%d merchants in catalog (use --category to list)", eng.Identifier().Count())))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	return cmd
}
