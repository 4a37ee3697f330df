package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2id creates an argon2id Hasher. Zero params take the package defaults.
func NewArgon2id(params Argon2Params) Hasher {
	params.applyDefaults()
	return &argon2Hasher{params: params}
}

// Hash encodes as $argon2id$v=19$m=MEMORY,t=TIME,p=THREADS$SALT$KEY.
func (h *argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Verify(plaintext, hash string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	if !h.costWithinLimits(memory, time, threads) {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < minArgon2SaltLen || len(salt) > maxArgon2SaltLen {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) < minArgon2KeyLen || len(expected) > maxArgon2KeyLen {
		return false
	}

	key := argon2.IDKey([]byte(plaintext), salt, time, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(key, expected) == 1
}

// costWithinLimits bounds the work a stored hash can demand. The configured
// params always pass so hashes this hasher produced keep verifying.
func (h *argon2Hasher) costWithinLimits(memory, time uint32, threads uint8) bool {
	if memory == 0 || time == 0 || threads == 0 {
		return false
	}
	return memory <= max(maxArgon2Memory, h.params.Memory) &&
		time <= max(maxArgon2Time, h.params.Time) &&
		threads <= max(maxArgon2Threads, h.params.Threads)
}

func isArgon2idHash(hash string) bool {
	return strings.HasPrefix(hash, argon2idPrefix)
}
