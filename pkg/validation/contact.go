package validation

import (
	"github.com/go-playground/validator/v10"
)

// ContactFields are the contact form values subject to validation. Subject is never validated.
type ContactFields struct {
	Name    string
	Email   string
	Message string
}

type rule struct {
	value   func(ContactFields) string
	tag     string
	message string
}

// contactRules are evaluated independently; every failing rule contributes its message.
var contactRules = []rule{
	{func(f ContactFields) string { return f.Name }, "trimmed_min=2", "Name must be at least 2 characters long"},
	{func(f ContactFields) string { return f.Email }, "contains=@", "Valid email address is required"},
	{func(f ContactFields) string { return f.Message }, "trimmed_min=10", "Message must be at least 10 characters long"},
	{func(f ContactFields) string { return f.Name }, "trimmed_max=100", "Name too long (max 100 characters)"},
	{func(f ContactFields) string { return f.Email }, "trimmed_max=200", "Email too long (max 200 characters)"},
	{func(f ContactFields) string { return f.Message }, "trimmed_max=2000", "Message too long (max 2000 characters)"},
}

// ContactForm returns one message per violated rule, or nil when the form is acceptable.
// v must have RegisterValidators applied.
func ContactForm(v *validator.Validate, f ContactFields) []string {
	var errs []string
	for _, r := range contactRules {
		if err := v.Var(r.value(f), r.tag); err != nil {
			errs = append(errs, r.message)
		}
	}
	return errs
}
