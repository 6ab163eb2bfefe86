package crypto

import "golang.org/x/crypto/blake2b"

// BreachDigest returns the fixed-size digest used to index breached
// passwords, so the breach table never stores plaintext.
func BreachDigest(password string) []byte {
	sum := blake2b.Sum256([]byte(password))
	return sum[:]
}
