// Package validate holds the input validators used by the client's forms.
// Validators that explain a failure return a Result; plain checks return a
// bool.
package validate

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Result is the outcome of a validation. Message is empty when Valid.
type Result struct {
	Valid   bool
	Message string
}

func ok() Result { return Result{Valid: true} }

func fail(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

var (
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe     = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,3}[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,4}$`)
	upperRe     = regexp.MustCompile(`[A-Z]`)
	lowerRe     = regexp.MustCompile(`[a-z]`)
	digitRe     = regexp.MustCompile(`\d`)
	specialRe   = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02", time.RFC1123, "Jan 2, 2006"}
)

func Email(s string) bool {
	return emailRe.MatchString(s)
}

// PasswordPolicy lists the rules a password must satisfy.
type PasswordPolicy struct {
	MinLength           int
	RequireUppercase    bool
	RequireLowercase    bool
	RequireNumbers      bool
	RequireSpecialChars bool
}

// DefaultPasswordPolicy requires eight characters and every character class.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:           8,
	RequireUppercase:    true,
	RequireLowercase:    true,
	RequireNumbers:      true,
	RequireSpecialChars: true,
}

// Password checks pw against p and reports the first rule it breaks.
func Password(pw string, p PasswordPolicy) Result {
	switch {
	case pw == "":
		return fail("Password is required")
	case utf8.RuneCountInString(pw) < p.MinLength:
		return fail("Password must be at least %d characters long", p.MinLength)
	case p.RequireUppercase && !upperRe.MatchString(pw):
		return fail("Password must contain at least one uppercase letter")
	case p.RequireLowercase && !lowerRe.MatchString(pw):
		return fail("Password must contain at least one lowercase letter")
	case p.RequireNumbers && !digitRe.MatchString(pw):
		return fail("Password must contain at least one number")
	case p.RequireSpecialChars && !specialRe.MatchString(pw):
		return fail("Password must contain at least one special character")
	}
	return ok()
}

// URL reports whether s is an absolute URL.
func URL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

func Phone(s string) bool {
	return phoneRe.MatchString(s)
}

// Date reports whether s parses as a date in one of the common layouts.
func Date(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses s using the first matching common layout.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Required fails for empty or whitespace-only values.
func Required(value, field string) Result {
	if field == "" {
		field = "Field"
	}
	if value == "" {
		return fail("%s is required", field)
	}
	if strings.TrimSpace(value) == "" {
		return fail("%s cannot be empty", field)
	}
	return ok()
}

// NumberRange checks min <= v <= max.
func NumberRange(v, min, max float64, field string) Result {
	if field == "" {
		field = "Value"
	}
	if math.IsNaN(v) {
		return fail("%s must be a valid number", field)
	}
	if v < min || v > max {
		return fail("%s must be between %g and %g", field, min, max)
	}
	return ok()
}

// StringLength checks the trimmed length of s in characters.
func StringLength(s string, min, max int, field string) Result {
	if field == "" {
		field = "Field"
	}
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n < min {
		return fail("%s must be at least %d characters long", field, min)
	}
	if n > max {
		return fail("%s cannot exceed %d characters", field, max)
	}
	return ok()
}

// Language validates a BCP 47 language tag and returns its canonical form.
func Language(code string) (string, Result) {
	if strings.TrimSpace(code) == "" {
		return "", fail("Language is required")
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fail("%q is not a valid language code", code)
	}
	return tag.String(), ok()
}
