package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Rule codes reported in ValidationError.Code.
const (
	CodeRequired  = "required"
	CodeMaxLength = "max_length"
	CodeEmail     = "email"
)

func rule(field, code, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{Field: field, Code: code, Message: message},
	}
}

// Required fails for empty or whitespace-only values.
func Required(field, value string) Rule {
	return rule(field, CodeRequired, "field is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MaxLen limits value to max characters (runes, not bytes).
func MaxLen(field, value string, max int) Rule {
	return rule(field, CodeMaxLength, fmt.Sprintf("must be at most %d characters long", max), func() bool {
		return utf8.RuneCountInString(value) <= max
	})
}

// ValidEmail validates a bare address such as "jane@example.com".
// Display-name forms ("Jane <jane@example.com>") are rejected: the value is
// used directly as a recipient and reply-to address.
func ValidEmail(field, value string) Rule {
	return rule(field, CodeEmail, "must be a valid email address", func() bool {
		return IsEmail(value)
	})
}

// IsEmail reports whether value is a single bare RFC 5322 address with a
// dotted domain.
func IsEmail(value string) bool {
	if value == "" || strings.TrimSpace(value) != value {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	at := strings.LastIndexByte(value, '@')
	if at <= 0 {
		return false
	}
	domain := value[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}
