package practice

import "errors"

// Validation failures surfaced to the user. These attach to the dialog or
// action that caused them and are never fatal.
var (
	// ErrNotReady is returned when a mutation is attempted before
	// reconciliation has published the registry.
	ErrNotReady = errors.New("registry not loaded yet")

	// ErrLastSession is returned when removing the only open session.
	ErrLastSession = errors.New("cannot close the last session")

	// ErrInvalidDistance is returned for a non-positive distance.
	ErrInvalidDistance = errors.New("distance must be positive")

	// ErrBlankName is returned when creating a user with an empty name.
	ErrBlankName = errors.New("user name cannot be empty")

	// ErrDuplicateName is returned when a user name already exists
	// (case-insensitive).
	ErrDuplicateName = errors.New("user name already exists")

	// ErrLastUser is returned when deleting would leave fewer than one user.
	ErrLastUser = errors.New("cannot delete the last user")

	// ErrUserInSession is returned when deleting a user who owns an open
	// session.
	ErrUserInSession = errors.New("user is active in an open session")

	// ErrProtectedUser is returned when deleting the default identity.
	ErrProtectedUser = errors.New("cannot delete the default user")

	// ErrUnknownUser is returned when switching to a user id that does not
	// exist.
	ErrUnknownUser = errors.New("user not found")

	// ErrNoPending is returned when resolving a confirmation that is not
	// currently open.
	ErrNoPending = errors.New("no pending confirmation")
)
