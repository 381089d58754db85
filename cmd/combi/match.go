package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/combi/langdef"
	"github.com/ava12/combi/lexer"
	"github.com/ava12/combi/rule"
	"github.com/ava12/combi/tree"
)

type matchParams struct {
	root   string
	format *enumFlag
}

var configuredMatchParams = matchParams{
	format: newEnumFlag(yamlFormat, []string{yamlFormat, jsonFormat, treeFormat}),
}

var matchCommand = &cobra.Command{
	Use:   "match <grammar> <input>",
	Short: "Match input against grammar",
	Long: `Compile grammar description, tokenize input file and match it against root rule.
Prints syntax tree as YAML, JSON, or a single-line s-expression (tree format).`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("expecting grammar and input file names")
		}
		return nil
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(match(args, &configuredMatchParams, os.Stdout, os.Stderr))
	},
}

func match(args []string, params *matchParams, stdout, stderr io.Writer) int {
	grammar, e := readSource(args[0])
	if e != nil {
		return reportError(stderr, e)
	}

	input, e := readSource(args[1])
	if e != nil {
		return reportError(stderr, e)
	}

	root, _, e := langdef.Compile(grammar, params.root, langdef.WithLogger(log))
	if e != nil {
		return reportError(stderr, e)
	}

	tokens, _ := lexer.Tokenize(input, lexer.WithLogger(log))
	nodes, e := rule.MatchAll(root, tokens)
	if e != nil {
		return reportError(stderr, e)
	}

	if params.format.String() == treeFormat {
		for _, n := range nodes {
			_, _ = fmt.Fprintln(stdout, tree.String(n))
		}
		return 0
	}

	plain := make([]any, len(nodes))
	for i, n := range nodes {
		plain[i] = tree.Plain(n)
	}
	var value any = plain
	if len(plain) == 1 {
		value = plain[0]
	}

	if e = writeValue(stdout, params.format.String(), value); e != nil {
		return reportError(stderr, e)
	}
	return 0
}

func init() {
	matchCommand.Flags().StringVarP(&configuredMatchParams.root, "root", "r", "", "set root rule name, default is the first defined rule")
	matchCommand.Flags().VarP(configuredMatchParams.format, "format", "f", "set output format")
	rootCommand.AddCommand(matchCommand)
}
