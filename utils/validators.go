package utils

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"instituteapi/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validatorOnce sync.Once

// InitValidator registers the custom rules on gin's validator engine.
// Safe to call more than once.
func InitValidator() {
	validatorOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterCustomValidators(v)
		}
	})
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterValidation("password", ValidatePasswordRule)
	v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return model.IsHTTPURL(fl.Field().String())
	})
	v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

func ValidatePassword(password string) bool {
	// Password must:
	// - Be at least 6 characters long
	// - Contain at least one number
	// - Contain at least one special character

	hasNumber := false
	hasSpecial := false

	if len(password) < 6 {
		return false
	}

	for _, char := range password {
		switch {
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasNumber && hasSpecial
}

// ValidationErrors flattens binding errors into field -> message.
// Errors that are not validator errors (bad JSON, wrong types) land under "body".
func ValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = "Invalid request body"
		return out
	}
	for _, fe := range verrs {
		out[fieldPath(fe)] = formatValidationError(fe)
	}
	return out
}

// fieldPath drops the top-level struct name: "EventInput.authors[0].name" -> "authors[0].name"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return e.Field() + " must contain at least " + e.Param() + " item(s)"
		}
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "httpurl":
		return e.Field() + " must be a valid http(s) URL"
	case "datetime":
		return e.Field() + " must match the format " + e.Param()
	case "password":
		return e.Field() + " must be at least 6 characters and contain a number and a special character"
	case "objectid":
		return e.Field() + " must be a valid id"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
