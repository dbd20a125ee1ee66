package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagCodes maps a failed validator tag to the issue code it reports.
// A field can override it with an `issue:"<Code>"` struct tag.
var tagCodes = map[string]Code{
	"required":      CodeRequired,
	"email":         CodeInvalidEmail,
	"contact_email": CodeInvalidEmail,
	"phone":         CodeInvalidContact,
	"gt":            CodeInvalidPrice,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Issues name fields the way the API does.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	mustRegister(v, "dotted_domain", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		at := strings.LastIndexByte(s, '@')
		return at >= 0 && strings.Contains(s[at+1:], ".")
	})
	v.RegisterAlias("contact_email", "email,dotted_domain")

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct runs the `validate` tags of s and returns every failure as an issue.
func Struct(s any) Result {
	var c Collector
	c.Struct(s)
	return c.Result()
}

// Struct records an issue for each `validate` tag of s that fails.
// s must be a struct or a pointer to one.
func (c *Collector) Struct(s any) {
	err := validate.Struct(s)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		panic(fmt.Sprintf("validation: %v", err))
	}

	typ := reflect.Indirect(reflect.ValueOf(s)).Type()
	for _, fe := range fieldErrs {
		c.Add(codeFor(typ, fe), fieldPath(fe), messageFor(fe))
	}
}

func codeFor(typ reflect.Type, fe validator.FieldError) Code {
	if f, ok := typ.FieldByName(fe.StructField()); ok {
		if code := f.Tag.Get("issue"); code != "" {
			return Code(code)
		}
	}
	if code, ok := tagCodes[fe.Tag()]; ok {
		return code
	}
	return CodeInvalidValue
}

// fieldPath drops the struct name from the namespace: "input.name" -> "name".
func fieldPath(fe validator.FieldError) string {
	_, path, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return path
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "phone":
		return field + " must have 10 or 11 digits"
	case "gt":
		if fe.Param() == "0" {
			return field + " must be a positive number"
		}
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must use the %s layout", field, fe.Param())
	}
	return field + " is not valid"
}
