package model

// PasswordHasher derives and verifies one-way credential digests. A failed
// match is reported as false, never as an error, so callers cannot tell a
// wrong password apart from an unknown user.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}
