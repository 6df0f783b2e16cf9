package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a set of choices.
type enumValue struct {
	value   *string
	choices []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(value *string, def string, choices ...string) *enumValue {
	*value = def

	return &enumValue{value: value, choices: choices}
}

func (e *enumValue) Set(s string) error {
	if !slices.Contains(e.choices, s) {
		return fmt.Errorf("%q is not one of %s", s, strings.Join(e.choices, ", "))
	}

	*e.value = s

	return nil
}

func (e *enumValue) String() string { return *e.value }

func (e *enumValue) Type() string { return "string" }

// usage appends the choices to a flag usage string.
func (e *enumValue) usage(text string) string {
	return text + " (" + strings.Join(e.choices, ", ") + ")"
}

// enumFlag registers an enum flag on the set.
func enumFlag(flags *pflag.FlagSet, value *string, name, short, def, usage string, choices ...string) {
	enum := newEnumValue(value, def, choices...)
	flags.VarP(enum, name, short, enum.usage(usage))
}
