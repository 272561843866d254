package validator

// Option configures a single validation call.
type Option func(*config)

type config struct {
	overrides map[string]Validator
}

// WithValidator overrides the validator for one rule name for this call only.
// The built-in registry is untouched; a later call without the option sees the
// built-in again.
func WithValidator(name string, fn Validator) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = make(map[string]Validator)
		}
		c.overrides[name] = fn
	}
}

// WithValidators overrides several validators at once. Entries shadow
// same-named built-ins for this call only.
func WithValidators(validators map[string]Validator) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = make(map[string]Validator, len(validators))
		}
		for name, fn := range validators {
			c.overrides[name] = fn
		}
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ValidateValue runs a rule set against a single value and returns the first
// failure message, or "" when every rule passes.
//
// Rules are evaluated in declaration order and evaluation stops at the first
// failure. A rule with an inline validator runs that function directly; any
// other rule resolves through the per-call overrides and then the built-in
// registry, and is silently skipped when neither knows its name. Unless the
// set carries an enabled required rule, nothing runs against an empty value:
// an empty optional field is always valid, so format rules never have to guard
// against "" themselves.
func ValidateValue(value string, rules RuleSet, opts ...Option) string {
	cfg := newConfig(opts)
	gate := rules.required() || value != ""

	errMsg := ""
	for _, rule := range rules {
		if errMsg != "" {
			break
		}
		fn := rule.Validator
		if fn == nil {
			fn = cfg.overrides[rule.Name]
		}
		if fn == nil {
			fn = builtins[rule.Name]
		}
		if fn == nil || !gate {
			continue
		}
		errMsg = fn(value, rule)
	}
	return errMsg
}

// Validate runs per-field rule sets against a map of values and returns a map
// of results keyed like the input.
//
// Every input key that has a rule entry appears in the result, passing fields
// recorded as "" rather than omitted. Input keys with no rule entry are left
// out of the result entirely; rule entries for keys absent from the input are
// ignored. Nothing here returns an error: validation failures are data, and
// missing rules or unknown validators degrade to "no error".
func Validate(values map[string]string, rules map[string]RuleSet, opts ...Option) map[string]string {
	result := make(map[string]string, len(values))
	for key, value := range values {
		fieldRules, ok := rules[key]
		if !ok {
			continue
		}
		result[key] = ValidateValue(value, fieldRules, opts...)
	}
	return result
}
