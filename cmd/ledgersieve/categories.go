package main

import (
	"github.com/spf13/cobra"

	"github.com/ledgersieve/ledgersieve/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect the category taxonomy",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List active categories",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			categories, err := st.Categories(ctx)
			if err != nil {
				return err
			}

			c.Println(cli.TitleStyle.Render("Categories"))
			for _, cat := range categories {
				kind := "custom"
				if cat.IsSystem {
					kind = "system"
				}
				indent := ""
				if !cat.IsRoot() {
					indent = "  "
				}
				c.Printf("%s%3d  %-24s [%s]\n", indent, cat.ID, cat.Name, kind)
			}
			return nil
		},
	})

	return cmd
}
