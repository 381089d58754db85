package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ava12/combi/internal/logging"
	"github.com/ava12/combi/source"
)

const (
	yamlFormat = "yaml"
	jsonFormat = "json"
	treeFormat = "tree"
)

type rootParams struct {
	logLevel  *enumFlag
	logFormat *enumFlag
}

var configuredRootParams = rootParams{
	logLevel:  newEnumFlag("info", logging.Levels),
	logFormat: newEnumFlag(logging.Formats[0], logging.Formats),
}

// log is set up by rootCommand before any subcommand runs.
var log logrus.FieldLogger = logrus.StandardLogger()

var rootCommand = &cobra.Command{
	Use:           path.Base(os.Args[0]),
	Short:         "Grammar description toolkit",
	Long:          "Tokenize, parse, check grammar descriptions and match input against them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		l, e := logging.New(os.Stderr, configuredRootParams.logLevel.String(), configuredRootParams.logFormat.String())
		if e != nil {
			return e
		}

		log = l
		return nil
	},
}

func init() {
	rootCommand.PersistentFlags().Var(configuredRootParams.logLevel, "log-level", "set log level")
	rootCommand.PersistentFlags().Var(configuredRootParams.logFormat, "log-format", "set log format")
}

// enumFlag is a string flag accepting one of listed values.
type enumFlag struct {
	value  string
	values []string
}

func newEnumFlag(value string, values []string) *enumFlag {
	return &enumFlag{value, values}
}

func (f *enumFlag) String() string {
	return f.value
}

func (f *enumFlag) Set(value string) error {
	if !slices.Contains(f.values, value) {
		return fmt.Errorf("must be one of {%s}", strings.Join(f.values, ","))
	}

	f.value = value
	return nil
}

func (f *enumFlag) Type() string {
	return "{" + strings.Join(f.values, ",") + "}"
}

func readSource(name string) (*source.Source, error) {
	content, e := os.ReadFile(name)
	if e != nil {
		return nil, e
	}

	return source.New(name, content), nil
}

func writeValue(w io.Writer, format string, value any) error {
	if format == jsonFormat {
		buf, e := json.MarshalIndent(value, "", "  ")
		if e != nil {
			return e
		}

		_, e = fmt.Fprintln(w, string(buf))
		return e
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if e := enc.Encode(value); e != nil {
		return e
	}
	return enc.Close()
}

func reportError(w io.Writer, e error) int {
	_, _ = fmt.Fprintln(w, e)
	return 1
}
