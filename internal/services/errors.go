package services

import "errors"

var (
	// ErrInvalidCredentials is returned on any failed login attempt.
	// Deliberately generic: it does not reveal whether the username exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession is returned when a session token is missing,
	// malformed, forged, expired, or references a user that no longer
	// exists.
	ErrInvalidSession = errors.New("invalid session")
)
