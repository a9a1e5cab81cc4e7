package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinderlang/cinder/diag"
	"github.com/cinderlang/cinder/format"
	"github.com/cinderlang/cinder/parser"
	"github.com/cinderlang/cinder/source"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var noRecover bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .cn file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			file, err := source.Load(filename)
			if err != nil {
				return err
			}

			stream, err := parser.Tokenize(file.Content, filename)
			if err != nil {
				if lexErr, ok := err.(*parser.LexicalError); ok {
					diag.Render(os.Stderr, diag.FromLexical(lexErr), file)
					return fmt.Errorf("tokenize: 1 error")
				}
				return fmt.Errorf("tokenize: %w", err)
			}

			opts := parser.DefaultParserOptions()
			opts.Recover = !noRecover
			prog, errs := parser.NewParserWith(stream, opts).ParseProgram()
			if len(errs) > 0 {
				diag.RenderAll(os.Stderr, diag.FromParseErrors(errs), file)
			}

			switch outputFormat {
			case "json":
				if err := format.NewASTJSONEncoder(os.Stdout).Encode(prog); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "text":
				fmt.Println(prog.String())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if len(errs) > 0 {
				return fmt.Errorf("parse: %d error(s)", len(errs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")
	cmd.Flags().BoolVar(&noRecover, "no-recover", false, "stop at the first parse error")

	return cmd
}
