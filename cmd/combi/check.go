package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/combi/langdef"
	"github.com/ava12/combi/rule"
)

type checkParams struct {
	root string
}

var configuredCheckParams checkParams

var checkCommand = &cobra.Command{
	Use:   "check <file>",
	Short: "Check grammar description",
	Long: `Parse and compile grammar description, print normalized rules on success.
Without --root every rule is compiled, otherwise only the rules reachable from root.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("expecting a single file name")
		}
		return nil
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(check(args, &configuredCheckParams, os.Stdout, os.Stderr))
	},
}

func check(args []string, params *checkParams, stdout, stderr io.Writer) int {
	src, e := readSource(args[0])
	if e != nil {
		return reportError(stderr, e)
	}

	_, ns, e := langdef.Compile(src, params.root, langdef.WithLogger(log))
	if e != nil {
		return reportError(stderr, e)
	}

	_, _ = fmt.Fprint(stdout, rule.FormatNamespace(ns))
	return 0
}

func init() {
	checkCommand.Flags().StringVarP(&configuredCheckParams.root, "root", "r", "", "set root rule name, default is the first defined rule")
	rootCommand.AddCommand(checkCommand)
}
