// Package logging builds logrus loggers for command line tools.
package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formats lists accepted log format names, the first one is the default.
var Formats = []string{"text", "json", "json-pretty"}

// Levels lists accepted log level names.
var Levels = []string{"debug", "info", "warn", "error"}

func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.DebugLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

func GetFormatter(format string) logrus.Formatter {
	switch format {
	case "json":
		return &logrus.JSONFormatter{}
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true}
	default:
		return &textFormatter{}
	}
}

// New returns logger writing to out with given level and format names.
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, e := GetLevel(level)
	if e != nil {
		return nil, e
	}

	if format != "" && !slices.Contains(Formats, format) {
		return nil, fmt.Errorf("invalid log format: %v", format)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(GetFormatter(format))
	return log, nil
}

// textFormatter writes "[LEVEL] message" line followed by sorted "key = value" lines.
// Positions are written as a single "source:line:col" field.
type textFormatter struct{}

func (f *textFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "[%s] %s", strings.ToUpper(e.Level.String()), e.Message)
	if pos := position(e.Data); pos != "" {
		b.WriteString(" at ")
		b.WriteString(pos)
	}
	b.WriteByte('\n')

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		switch k {
		case "source", "line", "col":
		default:
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, k := range keys {
		v := e.Data[k]
		s, isString := v.(string)
		if !isString {
			if err, isError := v.(error); isError {
				s = err.Error()
			} else {
				buf, err := json.Marshal(v)
				if err != nil {
					return nil, err
				}
				s = string(buf)
			}
		}
		fmt.Fprintf(b, "  %s = %s\n", k, s)
	}
	return b.Bytes(), nil
}

func position(data logrus.Fields) string {
	line, hasLine := data["line"]
	col, hasCol := data["col"]
	if !hasLine || !hasCol {
		return ""
	}

	src, _ := data["source"].(string)
	if src == "" {
		return fmt.Sprintf("%v:%v", line, col)
	}
	return fmt.Sprintf("%s:%v:%v", src, line, col)
}
