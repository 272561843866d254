package validator

import (
	"fmt"
	"regexp"

	"github.com/jmspsi126/uml-validator/mask"
)

var (
	// Email grammar: local part at a dotted domain with a 2+ letter TLD, or at
	// a bracketed IPv4 literal.
	emailRegex = regexp.MustCompile("^[A-Za-z0-9.!#$%&'*+/=?^_`{|}~-]+@(?:(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\\.)+[A-Za-z]{2,}|\\[(?:[0-9]{1,3}\\.){3}[0-9]{1,3}\\])$")

	// US zip code, 5-digit or 5+4
	zipCodeRegex = regexp.MustCompile(`^\d{5}(?:-\d{4})?$`)

	// Digits only
	digitsRegex = regexp.MustCompile(`^\d+$`)

	// Separator characters stripped from card numbers before the checksum
	nonWordRegex = regexp.MustCompile(`\W`)
)

// builtins is the default registry. It is never mutated; per-call overrides
// shadow entries via WithValidator / WithValidators.
var builtins = map[string]Validator{
	RuleRequired:    validateRequired,
	RuleEmail:       validateEmail,
	RuleCreditCard:  validateCreditCard,
	RulePattern:     validatePattern,
	RuleNumbersOnly: validateNumbersOnly,
	RuleZipCode:     validateZipCode,
}

// Builtins returns a copy of the built-in registry, keyed by rule name. The
// copy is the caller's to inspect or build upon; the registry itself is fixed
// for the lifetime of the process.
func Builtins() map[string]Validator {
	out := make(map[string]Validator, len(builtins))
	for name, fn := range builtins {
		out[name] = fn
	}
	return out
}

func validateRequired(value string, rule Rule) string {
	if !rule.Params.Enabled || value != "" {
		return ""
	}
	return Message(RuleRequired)
}

func validateEmail(value string, rule Rule) string {
	if !rule.Params.Enabled || emailRegex.MatchString(value) {
		return ""
	}
	return Message(RuleEmail)
}

func validateCreditCard(value string, _ Rule) string {
	cleaned := nonWordRegex.ReplaceAllString(value, "")
	if len(cleaned) < 12 || len(cleaned) > 19 || !digitsRegex.MatchString(cleaned) {
		return Message(RuleCreditCard)
	}

	// Luhn checksum: double every second digit from the right, digit-sum the
	// doubled values, and require the total to divide by 10.
	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}
		sum += digit
		double = !double
	}
	if sum%10 != 0 {
		return Message(RuleCreditCard)
	}
	return ""
}

func validatePattern(value string, rule Rule) string {
	if mask.Match(rule.Params.Mask, value) {
		return ""
	}
	shown := rule.Params.Placeholder
	if shown == "" {
		shown = rule.Params.Mask
	}
	return fmt.Sprintf(Message(RulePattern), shown)
}

func validateNumbersOnly(value string, _ Rule) string {
	if digitsRegex.MatchString(value) {
		return ""
	}
	return Message(RuleNumbersOnly)
}

func validateZipCode(value string, _ Rule) string {
	if zipCodeRegex.MatchString(value) {
		return ""
	}
	return Message(RuleZipCode)
}
