package repository

import "errors"

// Sentinel kinds for directory errors.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("already signed up for this activity")
	ErrNotSignedUp      = errors.New("not signed up for this activity")
)
