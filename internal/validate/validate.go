// Package validate runs ordered, declarative field rules against decoded
// JSON payloads. A rule names a field, a go-playground/validator tag
// expression, and the message reported on failure; one generic runner
// evaluates every rule and accumulates the failures so a response can list
// every offending field at once.
package validate

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Rule is a single field-level check.
type Rule struct {
	// Field is the JSON key in the request payload.
	Field string
	// Check is a validator tag expression (e.g. "email", "e164", "url",
	// "min=6"). Empty means presence-only.
	Check string
	// Message is reported verbatim when the rule fails.
	Message string
	// Optional rules are skipped when the field is absent or empty.
	Optional bool
}

// RuleSet is an ordered list of rules for one endpoint.
type RuleSet []Rule

// FieldError is one entry of the aggregate validation result.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var postalCodeRe = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z\- ]{2,9}$`)

var checker = newChecker()

func newChecker() *validator.Validate {
	v := validator.New()
	// Country-agnostic postal code, mirroring the permissive "any locale"
	// check the registration flow expects.
	if err := v.RegisterValidation("postal_code", func(fl validator.FieldLevel) bool {
		return postalCodeRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("validate: register postal_code: %v", err))
	}
	return v
}

// Run evaluates every rule in order against the payload and returns all
// failures. An empty result means the payload is accepted. Only string
// values are format-checked; a present non-string value satisfies presence
// and passes through.
func Run(payload map[string]any, rules RuleSet) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		val, present := stringField(payload, r.Field)
		if val == "" {
			if r.Optional {
				continue
			}
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
			continue
		}
		if !present || r.Check == "" {
			continue
		}
		if err := checker.Var(val, r.Check); err != nil {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}

// stringField returns the payload value for key as a string. The bool
// reports whether the value was actually a string; non-string values are
// rendered with fmt so presence checks still pass.
func stringField(payload map[string]any, key string) (string, bool) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return "", false
	}
	if s, ok := raw.(string); ok {
		return s, true
	}
	return fmt.Sprint(raw), false
}
