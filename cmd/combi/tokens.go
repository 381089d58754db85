package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/combi/lexer"
)

var tokensCommand = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print tokens of grammar description",
	Long: `Print tokens of grammar description, one per line: kind, line:col, text.
Unexpected characters are skipped and logged.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("expecting a single file name")
		}
		return nil
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(tokens(args, os.Stdout, os.Stderr))
	},
}

func tokens(args []string, stdout, stderr io.Writer) int {
	src, e := readSource(args[0])
	if e != nil {
		return reportError(stderr, e)
	}

	ts, _ := lexer.Tokenize(src, lexer.WithLogger(log))
	for _, t := range ts {
		_, _ = fmt.Fprintf(stdout, "%s\t%d:%d\t%s\n", t.Kind(), t.Line(), t.Col(), t.Text())
	}
	return 0
}

func init() {
	rootCommand.AddCommand(tokensCommand)
}
