package password

import "fmt"

// Hasher hashes and verifies passwords.
// Implementations are safe for concurrent use.
type Hasher interface {
	// Hash returns a self-contained encoded hash with a fresh random salt.
	// Hashing the same input twice yields different outputs.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A malformed hash is a mismatch.
	Verify(plaintext, hash string) bool
}

// New creates the Hasher selected by cfg. Verification through the returned
// Hasher accepts both bcrypt and argon2id hashes, so switching the algorithm
// does not lock out existing users.
func New(cfg Config) (Hasher, error) {
	cfg.applyDefaults()
	switch cfg.Algorithm {
	case AlgorithmBcrypt:
		primary, err := NewBcrypt(cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		return &dispatchHasher{primary: primary, bcrypt: primary, argon2: NewArgon2id(cfg.Argon2)}, nil
	case AlgorithmArgon2id:
		primary := NewArgon2id(cfg.Argon2)
		bc, err := NewBcrypt(cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		return &dispatchHasher{primary: primary, bcrypt: bc, argon2: primary}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}
}
