package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/combi/langdef"
)

type parseParams struct {
	format *enumFlag
}

var configuredParseParams = parseParams{
	format: newEnumFlag(yamlFormat, []string{yamlFormat, jsonFormat}),
}

var parseCommand = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse grammar description",
	Long:  `Parse grammar description and print rule definitions.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("expecting a single file name")
		}
		return nil
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(parse(args, &configuredParseParams, os.Stdout, os.Stderr))
	},
}

func parse(args []string, params *parseParams, stdout, stderr io.Writer) int {
	src, e := readSource(args[0])
	if e != nil {
		return reportError(stderr, e)
	}

	defs, e := langdef.Parse(src, langdef.WithLogger(log))
	if e != nil {
		return reportError(stderr, e)
	}

	if e = writeValue(stdout, params.format.String(), defs); e != nil {
		return reportError(stderr, e)
	}
	return 0
}

func init() {
	parseCommand.Flags().VarP(configuredParseParams.format, "format", "f", "set output format")
	rootCommand.AddCommand(parseCommand)
}
