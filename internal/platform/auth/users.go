package auth

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type User struct {
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type userRecord struct {
	User
	passwordHash []byte
}

// Registry holds the demo user accounts. Passwords are bcrypt-hashed at
// construction; there is no signup path, the set is fixed per process.
type Registry struct {
	mu    sync.RWMutex
	users map[string]userRecord
}

type seedUser struct {
	User
	password string
}

var demoUsers = []seedUser{
	{User: User{Username: "admin", FullName: "Admin User", Role: "admin", Department: "Administration"}, password: "admin123"},
	{User: User{Username: "doctor", FullName: "Dr. Sarah Johnson", Role: "doctor", Department: "Cardiology"}, password: "doctor123"},
	{User: User{Username: "staff", FullName: "Staff Member", Role: "staff", Department: "Reception"}, password: "staff123"},
}

// NewRegistry builds the registry with the three seeded demo accounts.
func NewRegistry() (*Registry, error) {
	r := &Registry{users: make(map[string]userRecord)}
	for _, su := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		r.users[su.Username] = userRecord{User: su.User, passwordHash: hash}
	}
	return r, nil
}

// Authenticate checks the password for the given username. A wrong username
// and a wrong password are indistinguishable to the caller.
func (r *Registry) Authenticate(username, password string) (User, error) {
	r.mu.RLock()
	rec, ok := r.users[username]
	r.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return rec.User, nil
}
