package validator

// Field is one entry of a Schema: a rule set plus the leaf marker that tells
// RecursiveValidate the entry is a validatable field rather than a nested rule
// group. Build leaves with Rules.
type Field struct {
	Rules    RuleSet
	Validate bool
}

// Schema maps field names to rule leaves for RecursiveValidate.
type Schema map[string]Field

// Rules marks a rule set as a validatable leaf of a Schema. It copies nothing
// it doesn't own: the given set is referenced as-is.
func Rules(rs RuleSet) Field {
	return Field{Rules: rs, Validate: true}
}

// RecursiveValidate runs every marked leaf of the schema against the matching
// value and returns a map holding only the failing keys. Passing keys are
// omitted, unlike Validate, which records them as "" — callers get a map that
// is empty exactly when everything passed.
//
// Entries without the Validate marker are skipped entirely. Nesting below one
// level is not descended into; known limitation.
func RecursiveValidate(values map[string]string, schema Schema, opts ...Option) map[string]string {
	failures := make(map[string]string)
	for key, field := range schema {
		if !field.Validate {
			continue
		}
		if msg := ValidateValue(values[key], field.Rules, opts...); msg != "" {
			failures[key] = msg
		}
	}
	return failures
}
