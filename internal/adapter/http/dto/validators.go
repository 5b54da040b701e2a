package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

var errInvalidAmount = errors.New("invalid amount")

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validateDecimalAmount accepts plain decimal strings ("12", "0.5").
// Sign and scale are left to the engine.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	_, err := ParseAmount(fl.Field().String())
	return err == nil
}

// ParseAmount parses a decimal amount, rejecting exponents and surrounding space.
func ParseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" || strings.ContainsAny(raw, "eE \t") {
		return decimal.Decimal{}, errInvalidAmount
	}
	return decimal.NewFromString(raw)
}

// TrimStrings trims surrounding whitespace from every exported string field
// (including *string) of a struct pointer. Values are otherwise kept verbatim:
// recipients such as "AT&T" must still match the directory, and output is
// escaped by whatever renders it.
func TrimStrings(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(trim(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				s := trim(elem.String())
				elem.SetString(s)
			}
		}
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
