package password

import "golang.org/x/crypto/bcrypt"

// Algorithm names a supported hashing scheme.
type Algorithm string

const (
	AlgorithmBcrypt   Algorithm = "bcrypt"
	AlgorithmArgon2id Algorithm = "argon2id"
)

// Config selects and tunes the hashing algorithm.
type Config struct {
	Algorithm  Algorithm
	BcryptCost int
	Argon2     Argon2Params
}

func (c *Config) applyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmBcrypt
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
	c.Argon2.applyDefaults()
}

// Argon2Params are the argon2id work factors.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

func (p *Argon2Params) applyDefaults() {
	if p.Time == 0 {
		p.Time = defaultArgon2Time
	}
	if p.Memory == 0 {
		p.Memory = defaultArgon2Memory
	}
	if p.Threads == 0 {
		p.Threads = defaultArgon2Threads
	}
	if p.KeyLen == 0 {
		p.KeyLen = defaultArgon2KeyLen
	}
	if p.SaltLen == 0 {
		p.SaltLen = defaultArgon2SaltLen
	}
}

// dispatchHasher hashes with primary and verifies with whichever scheme produced the stored hash.
type dispatchHasher struct {
	primary Hasher
	bcrypt  Hasher
	argon2  Hasher
}

func (h *dispatchHasher) Hash(plaintext string) (string, error) {
	return h.primary.Hash(plaintext)
}

func (h *dispatchHasher) Verify(plaintext, hash string) bool {
	switch {
	case isArgon2idHash(hash):
		return h.argon2.Verify(plaintext, hash)
	case isBcryptHash(hash):
		return h.bcrypt.Verify(plaintext, hash)
	default:
		return false
	}
}
