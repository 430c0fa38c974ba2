// Package validation checks the declarative constraints carried in the
// `validate` struct tags of the model types.
//
// Models never validate themselves on construction. A transport calls
// Validate before sending when it wants client-side checking.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every error returned from Struct. Callers in the
// model packages join it with their own invalid-argument sentinel.
var ErrInvalid = errors.New("constraint violation")

// Patterns for the named string shapes of the service model.
var patterns = map[string]*regexp.Regexp{
	"resourcename": regexp.MustCompile(`^([A-Za-z0-9-]_?)+$`),
	"resourcearn":  regexp.MustCompile(`^arn:aws((-us-gov)|(-iso)|(-iso-b)|(-cn))?:translate:[a-zA-Z0-9-]+:[0-9]{12}:.+$`),
	"jobid":        regexp.MustCompile(`^([\p{L}\p{Z}\p{N}_.:/=+\-%@]*)$`),
	"jobname":      regexp.MustCompile(`^([\p{L}\p{Z}\p{N}_.:/=+\-%@]*)$`),
	"clienttoken":  regexp.MustCompile(`^[a-zA-Z0-9-]+$`),
	"kmskeyid":     regexp.MustCompile(`^(arn:aws((-us-gov)|(-iso)|(-iso-b)|(-cn))?:kms:)?([a-z]{2}-[a-z]+(-[a-z]+)?-\d:)?(\d{12}:)?(((key/)?[a-zA-Z0-9_-]+)|(alias/[a-zA-Z0-9:/_-]+))$`),
	"iamrolearn":   regexp.MustCompile(`^arn:aws(-[^:]+)?:iam::[0-9]{12}:role/.+$`),
	"s3uri":        regexp.MustCompile(`^s3://[a-z0-9][\.\-a-z0-9]{1,61}[a-z0-9](/.*)?$`),
	"contenttype":  regexp.MustCompile(`^[-\w.]+\/[-\w.+]+$`),
	"tagtext":      regexp.MustCompile(`^([\p{L}\p{Z}\p{N}_.:/=+\-@]*)$`),
}

// knownValuer is implemented by every enumerated code.
type knownValuer interface {
	IsKnown() bool
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		for tag, re := range patterns {
			re := re
			if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return re.MatchString(fl.Field().String())
			}); err != nil {
				panic(fmt.Sprintf("validation: register %s: %v", tag, err))
			}
		}
		if err := v.RegisterValidation("enum", validateEnum); err != nil {
			panic(fmt.Sprintf("validation: register enum: %v", err))
		}
		instance = v
	})
	return instance
}

func validateEnum(fl validator.FieldLevel) bool {
	if !fl.Field().CanInterface() {
		return false
	}
	k, ok := fl.Field().Interface().(knownValuer)
	if !ok {
		return false
	}
	return k.IsKnown()
}

// Struct validates s against its `validate` tags. The returned error wraps
// ErrInvalid and, when the failure came from a tag, validator.ValidationErrors.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &Error{Fields: verrs}
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// Error lists the fields that failed validation.
type Error struct {
	Fields validator.ValidationErrors
}

func (e *Error) Error() string {
	msg := "constraint violation"
	for i, f := range e.Fields {
		if i == 0 {
			msg += ": "
		} else {
			msg += "; "
		}
		msg += fmt.Sprintf("%s failed %q", f.Namespace(), f.Tag())
		if f.Param() != "" {
			msg += fmt.Sprintf(" (%s)", f.Param())
		}
	}
	return msg
}

// Unwrap exposes both ErrInvalid and the underlying validator errors.
func (e *Error) Unwrap() []error {
	return []error{ErrInvalid, e.Fields}
}
