package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticIssuer(t *testing.T) {
	s := NewStaticIssuer()
	now := time.Date(2025, 5, 23, 12, 0, 0, 0, time.UTC)

	tok, err := s.Issue("user-123", now)
	require.NoError(t, err)
	assert.Equal(t, DefaultToken, tok.Value)
	assert.Equal(t, now.Add(time.Hour), tok.ExpiresAt)

	_, err = s.Validate(DefaultToken)
	assert.NoError(t, err)

	_, err = s.Validate("other")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
