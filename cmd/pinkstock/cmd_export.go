package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rl1809/pinkstock/internal/adapter/export"
)

func (a *app) exportCmd() *cobra.Command {
	var stem, dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole inventory to <stem>.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stem == "" {
				stem = a.cfg.ExportStem
			}
			path, err := export.ToFile(dir, stem, a.inventory.Items())
			if errors.Is(err, export.ErrEmptyExport) {
				fmt.Fprintln(cmd.ErrOrStderr(), "No items to export.")
				return err
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&stem, "stem", "", "file name without extension (defaults to PINKSTOCK_EXPORT_STEM)")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to write the file to")
	return cmd
}
