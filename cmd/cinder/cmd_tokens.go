package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinderlang/cinder/format"
	"github.com/cinderlang/cinder/parser"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string
	var keepTrivia bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a .cn file and dump the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			opts := parser.StandardOptions()
			if keepTrivia {
				opts = parser.IDEOptions()
			}
			stream, err := parser.TokenizeWith(data, filename, opts, nil)
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}

			switch outputFormat {
			case "text":
				return format.NewTokenTextEncoder(os.Stdout).Encode(stream)
			case "json":
				return format.NewTokenJSONEncoder(os.Stdout).Encode(stream)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&keepTrivia, "trivia", false, "keep whitespace and comment tokens")

	return cmd
}
