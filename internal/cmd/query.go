package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"itemstore/internal/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (e *env) newQueryCommand() *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   "query",
		Short: "List catalog items",
		Example: `  itemstore query --search diamond
  itemstore query --category Ores --sort price-desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := e.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			items := cat.Query(qf.query())
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				_, err := fmt.Fprintln(out, "No items found.")
				return err
			}
			_, err = fmt.Fprintln(out, itemTable(items, cat.Config().Currency))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%d of %d items\n", len(items), cat.Len())
			return err
		},
	}
	qf.register(cmd)
	return cmd
}

// itemTable renders items as a bordered table.
func itemTable(items []catalog.Item, currency string) string {
	rows := make([][]string, len(items))
	for i, it := range items {
		name := it.Name
		if it.Popular {
			name += " ★"
		}
		rows[i] = []string{
			name,
			it.Category,
			catalog.FormatPrice(it.Price, currency),
			strconv.Itoa(it.Stack),
			catalog.FormatPrice(it.StackPrice(), currency),
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Item", "Category", "Price", "Stack", "Stack price").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
