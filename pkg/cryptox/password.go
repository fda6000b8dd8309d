package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

// ErrMismatch is returned when a password does not match its stored hash.
var ErrMismatch = errors.New("password does not match")

// Hasher hashes and verifies passwords. New hashes are Argon2id in PHC
// format with the pepper appended to the password; bcrypt hashes
// ("$2a$", "$2b$", "$2y$") from imported accounts are still accepted on
// verify and never see the pepper.
type Hasher struct {
	pepper string
	dummy  string
}

// NewHasher builds a Hasher bound to pepper. An empty pepper is allowed.
func NewHasher(pepper string) (*Hasher, error) {
	h := &Hasher{pepper: pepper}

	// Used by VerifyDummy so unknown accounts cost the same as known ones.
	dummy, err := h.Hash("taskboard-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("cryptox: prepare dummy hash: %w", err)
	}
	h.dummy = dummy
	return h, nil
}

// Hash generates a PHC-format Argon2id hash string including salt and parameters.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		b64Salt,
		b64Hash,
	), nil
}

// Verify compares a plaintext password against a stored hash. It returns
// ErrMismatch on a wrong password and a format error when the stored hash
// cannot be parsed.
func (h *Hasher) Verify(password, encodedHash string) error {
	if strings.HasPrefix(encodedHash, "$2") {
		return verifyBcrypt(password, encodedHash)
	}
	return h.verifyArgon2id(password, encodedHash)
}

// VerifyDummy burns the same work as a real Verify against a throwaway
// hash. Call it when the account does not exist.
func (h *Hasher) VerifyDummy(password string) {
	_ = h.verifyArgon2id(password, h.dummy)
}

func verifyBcrypt(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("invalid hash format: %w", err)
	}
}

func (h *Hasher) verifyArgon2id(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return errors.New("invalid hash format: not argon2id")
	}
	if parts[2] != "v=19" {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	_, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par)
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}

	computed := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		iters,
		mem,
		par,
		uint32(len(expectedHash)), // #nosec G115 - If this overflows we have bigger problems
	)

	if subtle.ConstantTimeCompare(computed, expectedHash) == 1 {
		return nil
	}
	return ErrMismatch
}
