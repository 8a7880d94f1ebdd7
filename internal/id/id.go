package id

import "crypto/rand"

const chars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID creates a unique 16-character alphanumeric ID.
func GenerateID() string {
	return random(16)
}

// GenerateToken creates a 32-character alphanumeric bearer token.
func GenerateToken() string {
	return random(32)
}

func random(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}
