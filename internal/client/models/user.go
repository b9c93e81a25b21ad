// Package models defines the user record and the editable draft exchanged
// with the remote users resource.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Role is one of the fixed user roles.
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// Roles lists every accepted role in display order.
var Roles = []Role{RoleUser, RoleAdmin, RoleManager}

// Valid reports whether r belongs to the role enumeration.
func (r Role) Valid() bool {
	for _, x := range Roles {
		if r == x {
			return true
		}
	}
	return false
}

// ParseRole converts user input into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
	return r, nil
}

// ID is the opaque identifier assigned by the remote resource. The server may
// encode it as a JSON string or number; both decode into the same ID.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// User is a catalogued user as returned by the remote resource.
// ID is empty until the record has been persisted.
type User struct {
	ID    ID     `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Draft returns an independent copy of the editable fields of u.
func (u User) Draft() Draft {
	role := u.Role
	if role == "" {
		role = RoleUser
	}
	return Draft{Name: u.Name, Email: u.Email, Role: role}
}

func (u User) String() string {
	return fmt.Sprintf("%s\t%s\t%s\t%s", u.ID, u.Name, u.Email, u.Role)
}

// Draft is the working copy of a record's editable fields while a create or
// edit dialog is open. It is also the request body of create and update.
type Draft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// NewDraft returns an empty draft with the default role.
func NewDraft() Draft {
	return Draft{Role: RoleUser}
}

var ErrValidation = errors.New("validation error")

// Validate applies the required-field constraints of the form: non-empty
// name and email, an email of the form local@domain, and a known role.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	email := strings.TrimSpace(d.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return fmt.Errorf("%w: email %q is not a valid address", ErrValidation, d.Email)
	}
	if !d.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, d.Role)
	}
	return nil
}
