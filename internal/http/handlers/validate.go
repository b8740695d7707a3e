package handlers

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRE   = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRE = regexp.MustCompile(`^\d{6}$`)
	nonDigits = regexp.MustCompile(`\D`)
)

// NewValidator wires the Indian mobile and pincode formats the intake
// endpoints expect, reporting failures under json field names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return phoneRE.MatchString(nonDigits.ReplaceAllString(fl.Field().String(), ""))
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRE.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

// validationReasons flattens validator output into the reason list the
// API returns on 400s.
func validationReasons(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fe.Field()+" required")
		case "inphone":
			out = append(out, "invalid phone (expected 10-digit Indian mobile)")
		case "pincode":
			out = append(out, "invalid pincode (6 digits)")
		case "email":
			out = append(out, "invalid email")
		default:
			out = append(out, fe.Field()+" invalid")
		}
	}
	return out
}
