package credential

import "golang.org/x/crypto/bcrypt"

// Hash returns the salted bcrypt hash stored in users.password_hash.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
