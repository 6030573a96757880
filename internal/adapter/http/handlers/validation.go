package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"church_giving/pkg"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// mapBindingError turns a ShouldBindJSON failure into a 400 the giver can act on.
func mapBindingError(err error) *pkg.AppError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request body", err, http.StatusBadRequest)
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return pkg.NewDomainError("VALIDATION_ERROR", strings.Join(msgs, "; "), err, http.StatusBadRequest)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
