// Package vernam implements the repeating-key XOR transform used to obfuscate
// the budget book on disk, and the password to key derivation feeding it.
//
// The transform is reversible by anyone holding the key stream and offers no
// real confidentiality: a known plaintext prefix reveals the key.
package vernam

import "crypto/sha256"

// KeySize is the length of a key returned by Key.
const KeySize = sha256.Size

// Key derives the key from a password. It is the SHA-256 digest of the password bytes,
// the same value stored in the password hash file.
func Key(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

// XOR returns a new slice where byte i is input[i] ^ key[i%len(key)].
// Applying it twice with the same key returns the input.
// It panics if key is empty.
func XOR(input, key []byte) []byte {
	if len(key) == 0 {
		panic("vernam: empty key")
	}
	output := make([]byte, len(input))
	for i, b := range input {
		output[i] = b ^ key[i%len(key)]
	}
	return output
}
