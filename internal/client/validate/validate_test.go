package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"a.b+c@sub.domain.io", true},
		{"user@example", false},
		{"user example@x.com", false},
		{"@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Email(tt.in), tt.in)
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		msg  string
	}{
		{"empty", "", "Password is required"},
		{"short", "Ab1!", "Password must be at least 8 characters long"},
		{"no upper", "abcdefg1!", "Password must contain at least one uppercase letter"},
		{"no lower", "ABCDEFG1!", "Password must contain at least one lowercase letter"},
		{"no digit", "Abcdefgh!", "Password must contain at least one number"},
		{"no special", "Abcdefg12", "Password must contain at least one special character"},
		{"good", "Abcdefg1!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Password(tt.pw, DefaultPasswordPolicy)
			assert.Equal(t, tt.msg == "", r.Valid)
			assert.Equal(t, tt.msg, r.Message)
		})
	}

	relaxed := PasswordPolicy{MinLength: 4}
	assert.True(t, Password("abcd", relaxed).Valid)
}

func TestURL(t *testing.T) {
	assert.True(t, URL("http://localhost:3001/api"))
	assert.True(t, URL("mailto:user@example.com"))
	assert.False(t, URL("localhost"))
	assert.False(t, URL("/relative/path"))
	assert.False(t, URL(""))
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("+1 555 123 4567"))
	assert.True(t, Phone("(555) 123-4567"))
	assert.True(t, Phone("555-123-4567"))
	assert.True(t, Phone("5551234567"))
	assert.False(t, Phone("phone"))
	assert.False(t, Phone(""))
}

func TestDate(t *testing.T) {
	assert.True(t, Date("2025-05-23"))
	assert.True(t, Date("2025-05-23T12:30:00Z"))
	assert.True(t, Date("2025-05-23 12:30:00"))
	assert.False(t, Date("yesterday"))
	assert.False(t, Date("2025-13-40"))
}

func TestRequired(t *testing.T) {
	assert.Equal(t, Result{Message: "Email is required"}, Required("", "Email"))
	assert.Equal(t, Result{Message: "Field cannot be empty"}, Required("   ", ""))
	assert.True(t, Required("x", "Email").Valid)
}

func TestNumberRange(t *testing.T) {
	assert.True(t, NumberRange(5, 1, 10, "").Valid)
	assert.Equal(t, "Age must be between 18 and 99", NumberRange(5, 18, 99, "Age").Message)
	assert.Equal(t, "Value must be a valid number", NumberRange(math.NaN(), 0, 1, "").Message)
}

func TestStringLength(t *testing.T) {
	assert.True(t, StringLength("  héllo  ", 5, 5, "").Valid)
	assert.Equal(t, "Name must be at least 3 characters long", StringLength(" ab ", 3, 10, "Name").Message)
	assert.Equal(t, "Field cannot exceed 2 characters", StringLength("abc", 0, 2, "").Message)
}

func TestLanguage(t *testing.T) {
	code, r := Language("en-us")
	assert.True(t, r.Valid)
	assert.Equal(t, "en-US", code)

	_, r = Language("not a language")
	assert.False(t, r.Valid)

	_, r = Language("")
	assert.Equal(t, "Language is required", r.Message)
}
