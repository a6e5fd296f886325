package roster

import (
	"errors"
	"fmt"
)

// ValidationError reports a user-input constraint violation. The offending
// state is never committed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ConflictError reports a domain-rule violation: the player already belongs
// to a team.
type ConflictError struct {
	PlayerID int
	TeamID   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("player %d is already on team %s", e.PlayerID, e.TeamID)
}

// IsConflict reports whether err is a player-assignment conflict.
func IsConflict(err error) bool {
	var cErr *ConflictError
	return errors.As(err, &cErr)
}

// NotFoundError reports that the referenced team no longer exists.
type NotFoundError struct {
	TeamID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("team %s not found", e.TeamID)
}

// IsNotFound reports whether err references a missing team.
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}
