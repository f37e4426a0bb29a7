package security

// PasswordHasher abstracts one-way credential hashing.
// Implementations must use a slow, salted scheme; plaintext or reversible
// encodings are never acceptable.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the password
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash.
	// The comparison must not leak timing information.
	Verify(hash, password string) bool
}
