// Package validator validates form-field values against small declarative
// rule sets and reports failures as messages rather than errors or panics.
//
// A rule set is an ordered list of named checks. The engine resolves each name
// against a built-in registry (required, email, creditcard, pattern,
// numbersonly, zipcode), runs the checks in declaration order, and stops at
// the first failure so a field never shows more than one message at a time.
// Unknown rule names are skipped silently, and an empty value short-circuits
// every check unless the set declares Required — an empty optional field is
// always valid without format rules having to guard for it.
//
// # Architecture
//
// The package is stateless apart from two pieces of process-wide
// configuration: the built-in registry, which is fixed, and the message
// catalog, which may be replaced for localization via SetMessages or the
// LoadMessagesYAML/LoadMessagesJSON loaders. Per-call behavior is adjusted
// with functional options: WithValidator and WithValidators layer overrides
// over the registry for a single call without touching shared state, so
// concurrent Validate calls never observe each other.
//
// Core building blocks:
//   - Rule      – one named check with its configuration or an inline function
//   - RuleSet   – ordered checks for one field, first failure wins
//   - Validator – func(value, rule) string; "" means pass
//   - Schema    – named rule leaves for RecursiveValidate, built with Rules
//
// The pattern rule delegates mask matching to the mask subpackage.
//
// # Usage
//
//	errs := validator.Validate(
//	    map[string]string{"emailAddress": "a@b.com", "password": ""},
//	    map[string]validator.RuleSet{
//	        "emailAddress": {validator.Required(), validator.Email()},
//	        "password":     {validator.Required()},
//	    },
//	)
//	// errs == map[string]string{"emailAddress": "", "password": "This field is required."}
//
// A single value is validated with ValidateValue, which returns the first
// failure message or "":
//
//	msg := validator.ValidateValue("4111111111111111", validator.RuleSet{validator.CreditCard()})
//
// # Error Handling
//
// Validation failures are data, not faults: the only error returns in the
// package come from the catalog loaders, which reject content they cannot
// decode. Nothing in the validation path returns an error, logs, or panics on
// well-formed input.
package validator
