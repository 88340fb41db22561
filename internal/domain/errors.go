package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Rating errors
	ErrMsgInvalidTeam = "invalid team: a team must have at least one player"

	// Match errors
	ErrMsgMatchNotFound     = "match not found"
	ErrMsgNotParticipant    = "player is not a participant of the match"
	ErrMsgAlreadyConfirmed  = "player already confirmed the match"
	ErrMsgInvalidScore      = "invalid score"
	ErrMsgDuplicatePlayer   = "player appears more than once in the match"
	ErrMsgInvalidMatchRange = "invalid match range"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Rating errors
	ErrInvalidTeam = errors.New(ErrMsgInvalidTeam)

	// Match errors
	ErrMatchNotFound     = errors.New(ErrMsgMatchNotFound)
	ErrNotParticipant    = errors.New(ErrMsgNotParticipant)
	ErrAlreadyConfirmed  = errors.New(ErrMsgAlreadyConfirmed)
	ErrInvalidScore      = errors.New(ErrMsgInvalidScore)
	ErrDuplicatePlayer   = errors.New(ErrMsgDuplicatePlayer)
	ErrInvalidMatchRange = errors.New(ErrMsgInvalidMatchRange)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
