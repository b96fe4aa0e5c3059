package models

import "errors"

// Domain errors surfaced by the services. Handlers map these onto HTTP
// status codes; nothing is retried internally.
var (
	// ErrValidation covers malformed or missing input.
	ErrValidation = errors.New("invalid input")

	// ErrUserNotFound is returned when no user matches the given id.
	ErrUserNotFound = errors.New("user not found")

	// ErrMatchNotFound is returned when no match matches the given id.
	ErrMatchNotFound = errors.New("match not found")

	// ErrMatchNotOpen is returned when joining a match that already
	// started or finished.
	ErrMatchNotOpen = errors.New("match is not open")

	// ErrMatchFull is returned when a second team is already registered.
	ErrMatchFull = errors.New("match is already full")

	// ErrMatchNotInProgress is returned when reporting results for a
	// match that is not underway.
	ErrMatchNotInProgress = errors.New("match is not in progress")

	// ErrAlreadyJoined is returned when a player tries to join a match
	// they already participate in.
	ErrAlreadyJoined = errors.New("you are already in this match")

	// ErrNotParticipant is returned when the actor plays on neither team.
	ErrNotParticipant = errors.New("you are not in this match")

	// ErrEmailTaken is returned on registration with a known email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned on registration with a known username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a session token fails verification.
	ErrInvalidToken = errors.New("invalid token")
)
