// Package models holds the records served by the users API.
package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

var Roles = []Role{RoleUser, RoleAdmin, RoleManager}

// User is one stored record. CreatedAt orders listings and is not part of
// the wire format.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"-"`
}

// UserInput is the request body of create and update.
type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ErrInvalidInput wraps every validation failure of UserInput.
var ErrInvalidInput = errors.New("invalid input")

// Normalize trims the text fields and defaults an empty role to user.
func (in UserInput) Normalize() UserInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = Role(strings.ToLower(strings.TrimSpace(string(in.Role))))
	if in.Role == "" {
		in.Role = RoleUser
	}
	return in
}

// Validate checks a normalized input.
func (in UserInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	local, domain, ok := strings.Cut(in.Email, "@")
	if !ok || local == "" || domain == "" || strings.ContainsAny(in.Email, " \t") {
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidInput, in.Email)
	}
	if !slices.Contains(Roles, in.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}
	return nil
}

// Matches reports whether q (already lower-cased) is a substring of the
// name, email or role of u, ignoring case. An empty q matches everything.
func (u User) Matches(q string) bool {
	if q == "" {
		return true
	}
	for _, f := range []string{u.Name, u.Email, string(u.Role)} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
