package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validator "github.com/jmspsi126/uml-validator"
)

func TestBuiltins(t *testing.T) {
	t.Run("contains every built-in rule", func(t *testing.T) {
		builtins := validator.Builtins()
		for _, name := range []string{
			validator.RuleRequired,
			validator.RuleEmail,
			validator.RuleCreditCard,
			validator.RulePattern,
			validator.RuleNumbersOnly,
			validator.RuleZipCode,
		} {
			assert.Contains(t, builtins, name)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		builtins := validator.Builtins()
		delete(builtins, validator.RuleRequired)

		fresh := validator.Builtins()
		require.Contains(t, fresh, validator.RuleRequired, "mutating the copy must not affect the registry")
	})
}

func TestRequiredRule(t *testing.T) {
	t.Run("fails on empty value", func(t *testing.T) {
		msg := validator.ValidateValue("", validator.RuleSet{validator.Required()})
		assert.Equal(t, "This field is required.", msg)
	})

	t.Run("passes on any non-empty value", func(t *testing.T) {
		for _, value := range []string{"a", " ", "0", "false"} {
			msg := validator.ValidateValue(value, validator.RuleSet{validator.Required()})
			assert.Equal(t, "", msg, "value should satisfy required: %q", value)
		}
	})
}

func TestEmailRule(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"user@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
			"user@[123.123.123.123]",
		}

		for _, email := range validEmails {
			msg := validator.ValidateValue(email, validator.RuleSet{validator.Email()})
			assert.Equal(t, "", msg, "email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"not-an-email",
			"@missingdomain.com",
			"missing@.com",
			"missing@domain",
			"user@domain.c",
			"spaces @domain.com",
			"user@-bad-.com",
		}

		for _, email := range invalidEmails {
			msg := validator.ValidateValue(email, validator.RuleSet{validator.Email()})
			assert.Equal(t, "Must be a valid email.", msg, "email should be invalid: %s", email)
		}
	})
}

func TestCreditCardRule(t *testing.T) {
	rules := validator.RuleSet{validator.CreditCard()}

	t.Run("valid card numbers", func(t *testing.T) {
		validNumbers := []string{
			"4111111111111111",
			"4111 1111 1111 1111",
			"4111-1111-1111-1111",
			"5500005555555559",
			"340000000000009",
		}

		for _, number := range validNumbers {
			msg := validator.ValidateValue(number, rules)
			assert.Equal(t, "", msg, "card number should be valid: %s", number)
		}
	})

	t.Run("invalid card numbers", func(t *testing.T) {
		invalidNumbers := []string{
			"4111111111111112", // checksum off by one
			"41111111111",      // too short after stripping
			"41111111111111111111", // too long
			"4111x11111111111",
		}

		for _, number := range invalidNumbers {
			msg := validator.ValidateValue(number, rules)
			assert.Equal(t, "Please enter a valid credit card number", msg, "card number should be invalid: %s", number)
		}
	})
}

func TestPatternRule(t *testing.T) {
	t.Run("matching values pass", func(t *testing.T) {
		rules := validator.RuleSet{validator.Pattern("(999) 999-9999")}
		assert.Equal(t, "", validator.ValidateValue("(555) 123-4567", rules))
	})

	t.Run("failure message quotes the mask", func(t *testing.T) {
		rules := validator.RuleSet{validator.Pattern("999-99")}
		assert.Equal(t, "Please match the pattern 999-99", validator.ValidateValue("abc", rules))
	})

	t.Run("failure message prefers the placeholder", func(t *testing.T) {
		rules := validator.RuleSet{validator.PatternWithPlaceholder("999-99", "___-__")}
		assert.Equal(t, "Please match the pattern ___-__", validator.ValidateValue("abc", rules))
	})
}

func TestNumbersOnlyRule(t *testing.T) {
	rules := validator.RuleSet{validator.NumbersOnly()}

	t.Run("digit strings pass", func(t *testing.T) {
		for _, value := range []string{"0", "42", "0123456789"} {
			assert.Equal(t, "", validator.ValidateValue(value, rules), "value: %q", value)
		}
	})

	t.Run("anything else fails", func(t *testing.T) {
		for _, value := range []string{"12a", "1 2", "-1", "1.5"} {
			assert.Equal(t, "Please enter only numbers.", validator.ValidateValue(value, rules), "value: %q", value)
		}
	})
}

func TestZipCodeRule(t *testing.T) {
	rules := validator.RuleSet{validator.ZipCode()}

	t.Run("valid zip codes", func(t *testing.T) {
		for _, value := range []string{"12345", "12345-6789"} {
			assert.Equal(t, "", validator.ValidateValue(value, rules), "zip should be valid: %s", value)
		}
	})

	t.Run("invalid zip codes", func(t *testing.T) {
		for _, value := range []string{"1234", "123456", "12345-678", "abcde", "12345 6789"} {
			assert.Equal(t, "Please enter a valid zip code.", validator.ValidateValue(value, rules), "zip should be invalid: %s", value)
		}
	})
}
