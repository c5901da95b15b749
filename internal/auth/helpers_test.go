package auth

import (
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt.MinCost keeps the login tests fast
func hashForTest(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash), err
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
