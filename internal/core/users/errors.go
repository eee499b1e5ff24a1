package users

import "errors"

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the username belongs to another account
	ErrUsernameTaken = errors.New("username already taken")

	// ErrSelfFollow is returned when a user attempts to follow themselves
	ErrSelfFollow = errors.New("you cannot follow yourself")
)
