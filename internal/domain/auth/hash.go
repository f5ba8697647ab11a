package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost keeps a single hash around 100ms on commodity hardware.
const bcryptCost = 10

// HashPassword applies a salted one-way function to the raw password. The
// output embeds its own salt and cost factor, so verification needs no extra
// state. Any string hashes; failure means an internal fault, not bad input.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword recomputes with the parameters embedded in the stored hash
// and compares in constant time. A mismatch is a normal false, not an error.
func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
