package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword returns the argon2-encoded hash of a plaintext password.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext matches the encoded hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
