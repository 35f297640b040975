package authhelpers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

func NewSalt() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
