package password

const (
	defaultArgon2Time    = 1
	defaultArgon2Memory  = 64 * 1024
	defaultArgon2Threads = 4
	defaultArgon2KeyLen  = 32
	defaultArgon2SaltLen = 16

	// Limits on parameters read back from a stored hash. Anything outside them
	// is rejected before any key derivation runs.
	maxArgon2Time    = 16
	maxArgon2Memory  = 4 * defaultArgon2Memory
	maxArgon2Threads = 16
	minArgon2KeyLen  = 16
	maxArgon2KeyLen  = 64
	minArgon2SaltLen = 8
	maxArgon2SaltLen = 64

	argon2idPrefix = "$argon2id$"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}
