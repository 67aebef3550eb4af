package utils

import (
	"crypto/rand"
	"math/big"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePassword returns a random password of the given length, uniform
// over letters and digits. Callers get the plaintext exactly once; only the
// bcrypt hash is ever stored.
func GeneratePassword(length int) (string, error) {
	password := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		password[i] = passwordCharset[n.Int64()]
	}
	return string(password), nil
}
