package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire name, not the Go struct field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationReasons turns a validator error into one human-readable reason per
// violated rule, for the 422 response body.
func validationReasons(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid request body"}
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, fmt.Sprintf("%s must be a non-empty string", fe.Field()))
		case "oneof":
			allowed := strings.ReplaceAll(fe.Param(), " ", ", ")
			reasons = append(reasons, fmt.Sprintf("%s must be one of: %s", fe.Field(), allowed))
		default:
			reasons = append(reasons, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return reasons
}
