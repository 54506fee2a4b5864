package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/a11ykit/internal/element"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

// listValue is a repeatable, comma separated flag of parsed enum values.
type listValue[T fmt.Stringer] struct {
	values   []T
	parse    func(string) (T, error)
	typeName string
}

var (
	_ pflag.Value = (*listValue[warning.Level])(nil)
	_ pflag.Value = (*formatValue)(nil)
)

func newLevelList() *listValue[warning.Level] {
	return &listValue[warning.Level]{parse: warning.ParseLevel, typeName: "levels"}
}

func newTypeList() *listValue[warning.Type] {
	return &listValue[warning.Type]{parse: warning.ParseType, typeName: "types"}
}

func newClassList() *listValue[element.Class] {
	return &listValue[element.Class]{parse: element.ParseClass, typeName: "classes"}
}

// Set implements pflag.Value.
func (l *listValue[T]) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := l.parse(part)
		if err != nil {
			return err
		}
		l.values = append(l.values, v)
	}
	return nil
}

// String implements pflag.Value.
func (l *listValue[T]) String() string {
	parts := make([]string, len(l.values))
	for i, v := range l.values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

// Type implements pflag.Value.
func (l *listValue[T]) Type() string {
	return l.typeName
}

// Values returns the parsed values in flag order.
func (l *listValue[T]) Values() []T {
	return l.values
}

// Reset clears the parsed values.
func (l *listValue[T]) Reset() {
	l.values = nil
}

// outputFormat selects how audit results are printed.
type outputFormat string

const (
	formatTable  outputFormat = "table"
	formatJSON   outputFormat = "json"
	formatReport outputFormat = "report"
)

var outputFormats = []outputFormat{formatTable, formatJSON, formatReport}

type formatValue struct {
	format outputFormat
}

// Set implements pflag.Value.
func (f *formatValue) Set(s string) error {
	for _, candidate := range outputFormats {
		if strings.EqualFold(s, string(candidate)) {
			f.format = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (expected table, json or report)", s)
}

// String implements pflag.Value.
func (f *formatValue) String() string {
	return string(f.format)
}

// Type implements pflag.Value.
func (f *formatValue) Type() string {
	return "format"
}
