package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"itemstore/internal/htmlexport"
)

func (e *env) newExportCommand() *cobra.Command {
	var (
		qf  queryFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the storefront as a static HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := e.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := htmlexport.Export(w, cat, qf.query()); err != nil {
				return err
			}
			e.logger.Info("catalog exported", zap.String("out", out), zap.Int("items", cat.Len()))
			return nil
		},
	}
	qf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return cmd
}
