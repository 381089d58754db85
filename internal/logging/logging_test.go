package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ava12/combi/internal/test"
)

func TestGetLevel(t *testing.T) {
	samples := map[string]logrus.Level{
		"":      logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"INFO":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	}

	for name, expected := range samples {
		lvl, e := GetLevel(name)
		test.ExpectNoError(t, e)
		test.Expect(t, lvl == expected, expected, lvl)
	}

	_, e := GetLevel("loud")
	test.Assert(t, e != nil, "expecting error for unknown level")
}

func TestTextFormatter(t *testing.T) {
	e := logrus.WithFields(logrus.Fields{
		"source": "sample",
		"line":   2,
		"col":    9,
		"char":   "@",
		"error":  errors.New("field error"),
		"count":  3,
	})
	e.Message = "skipping"
	e.Level = logrus.WarnLevel

	out, err := (&textFormatter{}).Format(e)
	test.ExpectNoError(t, err)
	expected := "[WARNING] skipping at sample:2:9\n" +
		"  char = @\n" +
		"  count = 3\n" +
		"  error = field error\n"
	test.ExpectString(t, expected, string(out))
}

func TestTextFormatterNoPosition(t *testing.T) {
	e := logrus.NewEntry(logrus.StandardLogger())
	e.Message = "test"
	e.Level = logrus.InfoLevel

	out, err := (&textFormatter{}).Format(e)
	test.ExpectNoError(t, err)
	test.ExpectString(t, "[INFO] test\n", string(out))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, e := New(&buf, "warn", "json")
	test.ExpectNoError(t, e)

	log.Info("hidden")
	log.WithField("rule", "Atom").Warn("shown")

	entry := map[string]any{}
	test.ExpectNoError(t, json.Unmarshal(buf.Bytes(), &entry))
	test.ExpectString(t, "shown", entry["msg"].(string))
	test.ExpectString(t, "Atom", entry["rule"].(string))
	test.ExpectString(t, "warning", entry["level"].(string))

	_, e = New(&buf, "info", "xml")
	test.Assert(t, e != nil, "expecting error for unknown format")
	_, e = New(&buf, "loud", "text")
	test.Assert(t, e != nil, "expecting error for unknown level")
}
