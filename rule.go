package validator

// Built-in rule names. Custom rules may use any string key; these are the
// names the default registry and message catalog know about.
const (
	RuleRequired    = "required"
	RuleEmail       = "email"
	RuleCreditCard  = "creditcard"
	RulePattern     = "pattern"
	RuleNumbersOnly = "numbersonly"
	RuleZipCode     = "zipcode"
)

// Validator checks a single value against one rule. It returns the failure
// message, or the empty string when the value passes. Validators must be pure:
// no side effects, no mutation of the value. The engine short-circuits on the
// first failure, so validators after a failing one are never invoked.
type Validator func(value string, rule Rule) string

// Params holds the literal configuration of a rule.
//
// Enabled corresponds to declaring the rule with its default behavior; the
// constructors below set it. A rule present in a RuleSet with Enabled false is
// inert for the rules that interpret it (required, email) and has no gating
// effect on the rest of the set.
type Params struct {
	Enabled bool

	// Mask and Placeholder configure the pattern rule. Placeholder, when set,
	// replaces the raw mask in the failure message.
	Mask        string
	Placeholder string
}

// Rule is a single named check with its configuration. It is a tagged variant:
// when Validator is non-nil the function itself is the check and registry
// lookup is bypassed; otherwise Name resolves against the per-call overrides
// and then the built-in registry.
type Rule struct {
	Name      string
	Params    Params
	Validator Validator
}

// RuleSet is the ordered collection of rules applied to one field. Order is
// declaration order: the engine evaluates rules front to back and stops at the
// first failure.
type RuleSet []Rule

// required reports whether the set carries an enabled required rule, which
// lifts the empty-value gate for every rule in the set. An inline validator
// registered under the required name does not count: gating is a property of
// the declared rule, not of whatever function happens to run for it.
func (rs RuleSet) required() bool {
	for _, r := range rs {
		if r.Name == RuleRequired && r.Validator == nil && r.Params.Enabled {
			return true
		}
	}
	return false
}

// Required declares that the field must not be empty. Declaring it also lifts
// the empty-value gate: every other rule in the set runs even against "".
// Declare it first so its message wins over format-specific failures.
func Required() Rule {
	return Rule{Name: RuleRequired, Params: Params{Enabled: true}}
}

// Email declares that the field must be a valid email address.
func Email() Rule {
	return Rule{Name: RuleEmail, Params: Params{Enabled: true}}
}

// CreditCard declares that the field must be a plausible card number: 12-19
// digits after stripping separators, passing the Luhn checksum.
func CreditCard() Rule {
	return Rule{Name: RuleCreditCard, Params: Params{Enabled: true}}
}

// NumbersOnly declares that the field must consist solely of digits.
func NumbersOnly() Rule {
	return Rule{Name: RuleNumbersOnly, Params: Params{Enabled: true}}
}

// ZipCode declares that the field must be a US zip code, 5-digit or 5+4.
func ZipCode() Rule {
	return Rule{Name: RuleZipCode, Params: Params{Enabled: true}}
}

// Pattern declares that the field must satisfy a mask pattern (see the mask
// subpackage for the mask grammar). The failure message quotes the mask.
func Pattern(mask string) Rule {
	return Rule{Name: RulePattern, Params: Params{Enabled: true, Mask: mask}}
}

// PatternWithPlaceholder is Pattern with a human-readable placeholder shown in
// the failure message instead of the raw mask.
func PatternWithPlaceholder(mask, placeholder string) Rule {
	return Rule{Name: RulePattern, Params: Params{Enabled: true, Mask: mask, Placeholder: placeholder}}
}

// Custom declares a rule backed by an inline validator function. The function
// is invoked directly; neither the per-call overrides nor the built-in
// registry are consulted for it. The name is used only for identification.
func Custom(name string, fn Validator) Rule {
	return Rule{Name: name, Validator: fn}
}

// Use declares a rule by name with default behavior and no inline function,
// for rules supplied via WithValidator / WithValidators at call time.
func Use(name string) Rule {
	return Rule{Name: name, Params: Params{Enabled: true}}
}
