package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"itemstore/internal/catalog"
)

func (e *env) newCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <item> [quantity]",
		Short: "Price a quantity of an item",
		Long: `Price a quantity of an item and split it into stacks.
A missing or invalid quantity counts as 1.`,
		Example: `  itemstore calc Diamond 100
  itemstore calc "ender pearl"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := e.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			item, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("no item named %q", args[0])
			}
			qty := catalog.DefaultQuantity
			if len(args) == 2 {
				qty = catalog.ParseQuantity(args[1])
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatCalculation(catalog.Calculate(item, qty), cat.Config().Currency))
			return err
		},
	}
}

func formatCalculation(c catalog.Calculation, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s × %d\n", c.Item.Name, c.Quantity)
	fmt.Fprintf(&b, "Total:       %s\n", catalog.FormatPrice(c.Total, currency))
	fmt.Fprintf(&b, "Stacks:      %d × %d + %d\n", c.Stacks, c.Item.Stack, c.Remainder)
	fmt.Fprintf(&b, "Stack price: %s\n", catalog.FormatPrice(c.StackPrice, currency))
	return b.String()
}
