package grammar

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidateFunc checks a flag name, without its prefix.
type ValidateFunc func(name string) error

// flagNameTag is the validation tag registered for flag names.
const flagNameTag = "flagname"

// ErrInvalidCharacter is returned when a flag name has a refused character.
var ErrInvalidCharacter = errors.New("invalid character")

var defaultValidate = sync.OnceValue(func() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(flagNameTag, isFlagName)

	return validate
})

// isFlagName accepts ASCII letters, digits, underscores and dashes.
func isFlagName(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), refusedRune) < 0
}

func refusedRune(r rune) bool {
	if r > unicode.MaxASCII {
		return true
	}

	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-'
}

// DefaultValidator accepts names made of letters, digits, '_' and '-'.
func DefaultValidator(name string) error {
	return NewValidator(defaultValidate(), "required,"+flagNameTag)(name)
}

// AcceptAny accepts any flag name. Programs use it so that
// their name can be a path.
func AcceptAny(string) error { return nil }

// NewValidator returns a flag name validator running the given
// go-playground/validator tag on each name. Custom validations can
// be registered on the *validator.Validate beforehand.
func NewValidator(validate *validator.Validate, tag string) ValidateFunc {
	return func(name string) error {
		err := validate.Var(name, tag)
		if err == nil {
			return nil
		}

		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return err
		}

		return &invalidNameError{name: name, tag: verrs[0].Tag()}
	}
}

// invalidNameError rewrites validator errors into messages about flags.
type invalidNameError struct {
	name string
	tag  string
}

func (err *invalidNameError) Error() string {
	if err.tag == flagNameTag {
		if idx := strings.IndexFunc(err.name, refusedRune); idx >= 0 {
			return fmt.Sprintf("contains an invalid character: %q", []rune(err.name[idx:])[0])
		}
	}

	return fmt.Sprintf("is not a valid %s", err.tag)
}

func (err *invalidNameError) Unwrap() error {
	if err.tag == flagNameTag {
		return ErrInvalidCharacter
	}

	return nil
}
