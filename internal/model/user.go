// Package model defines the banking domain entities and their invariants.
package model

import (
	"fmt"
	"strings"
)

const (
	adultAge  = 18
	seniorAge = 60
	maxAge    = 120
)

// User is an immutable identity record. All fields are fixed at
// construction; uniqueness of the ID is a caller convention and is not
// enforced here.
type User struct {
	userID string
	name   string
	email  string
	age    int
}

// NewUser validates the supplied identity fields and creates a User.
// Construction is the only validation point; a User has no setters.
func NewUser(userID, name, email string, age int) (*User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewInvalidArgument("User ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidArgument("Name cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return nil, NewInvalidArgument("Invalid email format")
	}
	if age < adultAge {
		return nil, NewInvalidArgument("User must be at least 18 years old")
	}
	if age > maxAge {
		return nil, NewInvalidArgument("Invalid age")
	}

	return &User{
		userID: userID,
		name:   name,
		email:  email,
		age:    age,
	}, nil
}

// UserID returns the caller-assigned identifier.
func (u *User) UserID() string {
	return u.userID
}

// Name returns the user's name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Age returns the user's age in years.
func (u *User) Age() int {
	return u.age
}

// IsAdult reports whether the user is at least 18 years old.
func (u *User) IsAdult() bool {
	return u.age >= adultAge
}

// IsSenior reports whether the user is at least 60 years old.
func (u *User) IsSenior() bool {
	return u.age >= seniorAge
}

// String renders the user for logs and diagnostics.
func (u *User) String() string {
	return fmt.Sprintf("User{userId=%q, name=%q, email=%q, age=%d}", u.userID, u.name, u.email, u.age)
}
