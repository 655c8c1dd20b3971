package customer

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Customer struct {
	ID        int       `json:"id"`
	MID       int       `json:"mid"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HashPassword returns a bcrypt hash for storage in PassHash.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether plain matches the stored hash. Customers
// created without a password have an empty hash and never match.
func (c *Customer) CheckPassword(plain string) bool {
	if c.PassHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PassHash), []byte(plain)) == nil
}
