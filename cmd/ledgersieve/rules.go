package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgersieve/ledgersieve/internal/cli"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and manage categorization rules",
	}
	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules in evaluation order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			persisted, err := st.Rules(ctx)
			if err != nil {
				return err
			}

			cmd.Println(cli.TitleStyle.Render("Categorization rules"))
			for _, r := range persisted {
				kind := "user"
				if r.IsSystem {
					kind = "system"
				}
				active := ""
				if !r.IsActive {
					active = " (inactive)"
				}
				cmd.Printf("%4d  p%-3d  conf %.2f  [%s] %s%s  used %d\n",
					r.ID, r.Priority, r.Confidence, kind, r.Name, active, r.UseCount)
			}
			return nil
		},
	}
}

func rulesAddCmd() *cobra.Command {
	var (
		name       string
		category   string
		contains   string
		exact      string
		descSubstr string
		regex      string
		accType    string
		signFlag   string
		amountMin  float64
		amountMax  float64
		priority   int
		confidence float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user rule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			categories, err := st.Categories(ctx)
			if err != nil {
				return err
			}
			categoryID := 0
			for _, c := range categories {
				if c.Name == category {
					categoryID = c.ID
					break
				}
			}
			if categoryID == 0 {
				return fmt.Errorf("unknown category %q", category)
			}

			rule := model.CategoryRule{
				Name:                name,
				CategoryID:          categoryID,
				MerchantContains:    contains,
				MerchantExact:       exact,
				DescriptionContains: descSubstr,
				RegexPattern:        regex,
				AccountType:         accType,
				Priority:            priority,
				Confidence:          confidence,
				IsActive:            true,
			}
			if cmd.Flags().Changed("amount-min") {
				rule.AmountMin = &amountMin
			}
			if cmd.Flags().Changed("amount-max") {
				rule.AmountMax = &amountMax
			}
			switch signFlag {
			case "":
			case string(model.AmountSignPositive), string(model.AmountSignNegative):
				sign := model.AmountSign(signFlag)
				rule.AmountSign = &sign
			default:
				return fmt.Errorf("invalid --amount-sign %q (positive or negative)", signFlag)
			}

			if err := st.SaveRule(ctx, &rule); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("saved rule %d: %s", rule.ID, rule.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rule name")
	cmd.Flags().StringVar(&category, "category", "", "target category name")
	cmd.Flags().StringVar(&contains, "merchant-contains", "", "merchant substring condition")
	cmd.Flags().StringVar(&exact, "merchant-exact", "", "normalized merchant equality condition")
	cmd.Flags().StringVar(&descSubstr, "description-contains", "", "description substring condition")
	cmd.Flags().StringVar(&regex, "regex", "", "regex condition (case-insensitive)")
	cmd.Flags().StringVar(&accType, "account-type", "", "account type condition")
	cmd.Flags().StringVar(&signFlag, "amount-sign", "", "amount sign condition (positive, negative)")
	cmd.Flags().Float64Var(&amountMin, "amount-min", 0, "minimum absolute amount (inclusive)")
	cmd.Flags().Float64Var(&amountMax, "amount-max", 0, "maximum absolute amount (inclusive)")
	cmd.Flags().IntVar(&priority, "priority", 50, "rule priority (higher evaluates first)")
	cmd.Flags().Float64Var(&confidence, "confidence", 0.8, "assigned confidence in [0,1]")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
