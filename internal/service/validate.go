package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"cmsapi/internal/model"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Optional fields validate their value; absent and null are skipped by omitempty.
	v.RegisterCustomTypeFunc(optionalValue[string], model.Optional[string]{})
	v.RegisterCustomTypeFunc(optionalValue[int], model.Optional[int]{})
	v.RegisterCustomTypeFunc(optionalValue[int64], model.Optional[int64]{})
	v.RegisterCustomTypeFunc(optionalValue[bool], model.Optional[bool]{})
	v.RegisterCustomTypeFunc(optionalValue[[]int64], model.Optional[[]int64]{})
	v.RegisterCustomTypeFunc(optionalValue[time.Time], model.Optional[time.Time]{})
	v.RegisterCustomTypeFunc(optionalValue[model.PostStatus], model.Optional[model.PostStatus]{})
	v.RegisterCustomTypeFunc(optionalValue[model.Role], model.Optional[model.Role]{})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

func optionalValue[T any](field reflect.Value) any {
	if o, ok := field.Interface().(model.Optional[T]); ok {
		return o.Value
	}
	return nil
}

// checkStruct runs the validate tags of s and folds the failures, after extra, into a *ValidationError.
func checkStruct(s any, extra ...FieldError) error {
	fields := append([]FieldError(nil), extra...)
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate: %w", err)
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email"
	case "slug":
		return "must be lowercase alphanumeric with hyphens"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gt":
		if fe.Param() == "0" {
			return "must be positive"
		}
		return "must be greater than " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must not exceed " + fe.Param() + " characters"
		}
		return "must not exceed " + fe.Param()
	}
	return "failed on the '" + fe.Tag() + "' rule"
}

// nullCheck names a patch field that may not be cleared.
type nullCheck struct {
	field string
	null  bool
}

func nullErrors(checks ...nullCheck) []FieldError {
	var out []FieldError
	for _, c := range checks {
		if c.null {
			out = append(out, FieldError{Field: c.field, Message: "must not be null"})
		}
	}
	return out
}
