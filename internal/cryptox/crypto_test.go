package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("correct horse battery staple")
	salt := []byte("0123456789abcdef0123456789abcdef")

	k1 := DeriveKey(password, salt)
	k2 := DeriveKey(password, salt)

	require.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
}

func TestDeriveKey_SaltMatters(t *testing.T) {
	password := []byte("pw")
	k1 := DeriveKey(password, []byte("salt-one-000000000000000000000000"))
	k2 := DeriveKey(password, []byte("salt-two-000000000000000000000000"))
	assert.NotEqual(t, k1, k2)
}

func TestVerifyPassword(t *testing.T) {
	password := []byte("pw")
	salt := []byte("some-salt")
	verifier := MakeVerifier(DeriveKey(password, salt))

	assert.True(t, VerifyPassword([]byte("pw"), salt, verifier))
	assert.False(t, VerifyPassword([]byte("wrong"), salt, verifier))
	assert.False(t, VerifyPassword([]byte("pw"), []byte("other-salt"), verifier))
}
