package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeStore_IssueAndVerify(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)

	code, err := s.Issue("a@example.edu")
	require.NoError(t, err)
	assert.Len(t, code, codeLength)

	assert.True(t, s.Verify("a@example.edu", code))
	// consumed on success
	assert.False(t, s.Verify("a@example.edu", code))
}

func TestCodeStore_WrongCode(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)

	code, err := s.Issue("a@example.edu")
	require.NoError(t, err)

	assert.False(t, s.Verify("a@example.edu", "000000x"))
	assert.False(t, s.Verify("other@example.edu", code))
	// a failed attempt does not consume the code
	assert.True(t, s.Verify("a@example.edu", code))
}

func TestCodeStore_Expiry(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)

	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	code, err := s.Issue("a@example.edu")
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(11 * time.Minute) }
	assert.False(t, s.Verify("a@example.edu", code))
}

func TestCodeStore_ReissueReplaces(t *testing.T) {
	s := NewCodeStore(10 * time.Minute)

	first, err := s.Issue("a@example.edu")
	require.NoError(t, err)
	second, err := s.Issue("a@example.edu")
	require.NoError(t, err)

	if first != second {
		assert.False(t, s.Verify("a@example.edu", first))
	}
	assert.True(t, s.Verify("a@example.edu", second))
}
