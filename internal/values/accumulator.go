package values

import (
	"github.com/reeflective/argon/internal/errors"
)

// Accumulator collects the raw tokens given to one activation of a node,
// and produces its value when the node is closed. Accumulators are single
// use: one is created each time a node is opened.
//
// The values returned by Close are, depending on the shape:
//   - Switch:      bool (always true)
//   - Single:      string, or nil when optional and never set
//   - CommonArray: []string
//   - UniqueArray: []string
//   - NamedValues: map[string]string
type Accumulator interface {
	// Add offers a raw token to the node.
	Add(token string) error

	// Close returns the node value. The next token (or eol when the
	// input is exhausted) is only used for error reporting.
	Close(next string, eol bool) (any, error)

	// Flag returns the token that opened the node.
	Flag() string
}

// New returns a fresh accumulator of the given shape. An invalid shape
// yields a Single accumulator: shapes are checked when declaring nodes.
func New(shape Shape, flag string, required bool) Accumulator {
	switch shape {
	case Switch:
		return &switchValue{flag: flag}
	case CommonArray:
		return &commonArray{flag: flag, required: required, values: []string{}}
	case UniqueArray:
		return &uniqueArray{flag: flag, required: required, values: []string{}, seen: map[string]struct{}{}}
	case NamedValues:
		return &namedValues{flag: flag, required: required, values: map[string]string{}}
	default:
		return &singleValue{flag: flag, required: required}
	}
}

const (
	aritySwitch       = "does not take any values, but one was given"
	aritySingle       = "takes only a single value, but another one was given"
	aritySingleNeeded = "takes exactly one value, but none was given before"
	arityArrayNeeded  = "takes at least one value, but none was given before"
	arityPairNeeded   = "takes at least one value pair, but none was given before"
	arityPairDangling = "takes value pairs, but a key was left without value before"
)

//
// Switch ----------------------------------------------------------------- //
//

type switchValue struct {
	flag string
}

func (v *switchValue) Add(token string) error {
	return errors.FinishedPattern(v.flag, token, aritySwitch)
}

func (v *switchValue) Close(string, bool) (any, error) {
	return true, nil
}

func (v *switchValue) Flag() string { return v.flag }

//
// Single ----------------------------------------------------------------- //
//

type singleValue struct {
	flag     string
	required bool
	value    *string
}

func (v *singleValue) Add(token string) error {
	if v.value != nil {
		return errors.FinishedPattern(v.flag, token, aritySingle)
	}

	v.value = &token

	return nil
}

func (v *singleValue) Close(next string, eol bool) (any, error) {
	if v.value == nil {
		if v.required {
			return nil, errors.UnfinishedPattern(v.flag, next, eol, aritySingleNeeded)
		}

		return nil, nil
	}

	return *v.value, nil
}

func (v *singleValue) Flag() string { return v.flag }

//
// Arrays ----------------------------------------------------------------- //
//

type commonArray struct {
	flag     string
	required bool
	values   []string
}

func (v *commonArray) Add(token string) error {
	v.values = append(v.values, token)

	return nil
}

func (v *commonArray) Close(next string, eol bool) (any, error) {
	if v.required && len(v.values) == 0 {
		return nil, errors.UnfinishedPattern(v.flag, next, eol, arityArrayNeeded)
	}

	return v.values, nil
}

func (v *commonArray) Flag() string { return v.flag }

type uniqueArray struct {
	flag     string
	required bool
	values   []string
	seen     map[string]struct{}
}

func (v *uniqueArray) Add(token string) error {
	if _, seen := v.seen[token]; seen {
		return nil
	}

	v.seen[token] = struct{}{}
	v.values = append(v.values, token)

	return nil
}

func (v *uniqueArray) Close(next string, eol bool) (any, error) {
	if v.required && len(v.values) == 0 {
		return nil, errors.UnfinishedPattern(v.flag, next, eol, arityArrayNeeded)
	}

	return v.values, nil
}

func (v *uniqueArray) Flag() string { return v.flag }

//
// Named values ----------------------------------------------------------- //
//

type namedValues struct {
	flag     string
	required bool
	key      *string
	values   map[string]string
}

func (v *namedValues) Add(token string) error {
	if v.key == nil {
		v.key = &token

		return nil
	}

	v.values[*v.key] = token
	v.key = nil

	return nil
}

func (v *namedValues) Close(next string, eol bool) (any, error) {
	if v.key != nil {
		return nil, errors.UnfinishedPattern(v.flag, next, eol, arityPairDangling)
	}

	if v.required && len(v.values) == 0 {
		return nil, errors.UnfinishedPattern(v.flag, next, eol, arityPairNeeded)
	}

	return v.values, nil
}

func (v *namedValues) Flag() string { return v.flag }
