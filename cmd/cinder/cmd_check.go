package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinderlang/cinder/diag"
	"github.com/cinderlang/cinder/lsp"
	"github.com/cinderlang/cinder/source"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check .cn files for syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, filename := range args {
				file, err := source.Load(filename)
				if err != nil {
					return err
				}
				diags := lsp.Analyze(file)
				diag.RenderAll(os.Stderr, diags, file)
				total += len(diags)
			}

			if total > 0 {
				return fmt.Errorf("found %d error(s)", total)
			}
			return nil
		},
	}
}
