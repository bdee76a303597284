package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("trimmed_min", TrimmedMin)
	_ = v.RegisterValidation("trimmed_max", TrimmedMax)
}

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// TrimmedMin checks the rune length of a string after trimming surrounding whitespace.
// An empty string counts as length zero.
func TrimmedMin(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return trimmedLen(fl.Field().String()) >= limit
}

// TrimmedMax is the upper-bound counterpart of TrimmedMin.
func TrimmedMax(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return trimmedLen(fl.Field().String()) <= limit
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
