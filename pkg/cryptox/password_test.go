package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T, pepper string) *Hasher {
	t.Helper()
	h, err := NewHasher(pepper)
	require.NoError(t, err)
	return h
}

func TestHash(t *testing.T) {
	h := newTestHasher(t, "test-pepper")

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"),
				"hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Equal(t, "m=19456,t=2,p=1", parts[3])
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")

			require.NoError(t, h.Verify(tt.password, hash))
		})
	}
}

func TestHash_UniqueSalts(t *testing.T) {
	h := newTestHasher(t, "")

	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.NoError(t, h.Verify("samepassword", hash1))
	require.NoError(t, h.Verify("samepassword", hash2))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := newTestHasher(t, "pepper")
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{
		"wrong-password",
		"Correct-Password",
		"correct-password ",
		"",
		strings.Repeat("x", 10000),
	} {
		require.ErrorIs(t, h.Verify(wrong, hash), ErrMismatch, "password %q", wrong)
	}
}

func TestVerify_PepperMatters(t *testing.T) {
	a := newTestHasher(t, "pepper-a")
	b := newTestHasher(t, "pepper-b")

	hash, err := a.Hash("secret-password")
	require.NoError(t, err)

	require.NoError(t, a.Verify("secret-password", hash))
	require.ErrorIs(t, b.Verify("secret-password", hash), ErrMismatch)
}

func TestVerify_Bcrypt(t *testing.T) {
	h := newTestHasher(t, "pepper-is-ignored-for-bcrypt")

	legacy, err := bcrypt.GenerateFromPassword([]byte("imported-password"), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, h.Verify("imported-password", string(legacy)))
	require.ErrorIs(t, h.Verify("other-password", string(legacy)), ErrMismatch)

	err = h.Verify("imported-password", "$2a$10$tooshort")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMismatch)
}

func TestVerify_InvalidHashFormat(t *testing.T) {
	h := newTestHasher(t, "")

	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"wrong algorithm", "$scrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Verify("test-password", tt.invalidHash)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrMismatch)
		})
	}
}

func TestVerifyDummy(t *testing.T) {
	h := newTestHasher(t, "pepper")
	require.NotEmpty(t, h.dummy)
	require.NotPanics(t, func() { h.VerifyDummy("anything") })
}
