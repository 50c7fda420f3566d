package util

import (
	"crypto/rand"
	"math/big"
)

const randomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomString returns n random alphanumeric characters.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomAlphabet))))
		if err != nil {
			b[i] = randomAlphabet[0]
			continue
		}
		b[i] = randomAlphabet[idx.Int64()]
	}
	return string(b)
}
