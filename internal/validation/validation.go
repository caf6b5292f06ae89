// Package validation rejects or sanitizes request input before it reaches the
// data layer. Each endpoint registers an ordered set of field rule chains;
// every chain runs its steps left to right and stops at the first failing
// step for that field. Failures across fields are collected in declaration
// order so clients always see a stable error list.
package validation

import (
	"html"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tinhat/dirtysecrets/internal/utils"
)

// validate is the shared validator instance backing the format predicates.
var validate = newValidator()

var alphaSpaceRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// Letters and spaces only, for person names
	if err := v.RegisterValidation("alpha_space", func(fl validator.FieldLevel) bool {
		return alphaSpaceRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Step is one link in a field rule chain. It may transform the value
// (trimming, escaping) and reports whether the chain should continue.
type Step func(value string) (string, bool)

// Trim removes surrounding whitespace. It never fails.
func Trim(value string) (string, bool) {
	return strings.TrimSpace(value), true
}

// Required fails on an empty value.
func Required(value string) (string, bool) {
	return value, value != ""
}

// Numeric fails unless the value is a plain decimal number.
func Numeric(value string) (string, bool) {
	return value, validate.Var(value, "numeric") == nil
}

// AlphaSpace fails unless the value contains only letters and spaces.
func AlphaSpace(value string) (string, bool) {
	return value, validate.Var(value, "alpha_space") == nil
}

// Escape replaces HTML special characters with their entities. It never fails.
func Escape(value string) (string, bool) {
	return html.EscapeString(value), true
}

// FieldRules binds a request field to its rule chain and failure message.
type FieldRules struct {
	Field   string
	Message string
	Steps   []Step
}

// RuleSet is the ordered list of field rule chains for one endpoint.
type RuleSet []FieldRules

// Run applies every chain in the set to the given field values. It returns
// the sanitized values and the ordered list of failed fields. A field that is
// absent from the input is treated as empty.
func (rs RuleSet) Run(fields map[string]string) (map[string]string, []utils.FieldError) {
	sanitized := make(map[string]string, len(rs))
	var failures []utils.FieldError

	for _, fr := range rs {
		value := fields[fr.Field]
		ok := true
		for _, step := range fr.Steps {
			value, ok = step(value)
			if !ok {
				break
			}
		}

		if !ok {
			failures = append(failures, utils.FieldError{
				Field:   fr.Field,
				Message: fr.Message,
			})
			continue
		}
		sanitized[fr.Field] = value
	}

	return sanitized, failures
}

// Validate runs the rule set registered for the given endpoint. An endpoint
// with no registered rules accepts any input unchanged.
func Validate(endpoint string, fields map[string]string) (map[string]string, []utils.FieldError) {
	rules, ok := ruleSets[endpoint]
	if !ok {
		return fields, nil
	}
	return rules.Run(fields)
}
