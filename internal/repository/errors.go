package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup by ID matches no row.
	ErrNotFound = errors.New("not found")

	// ErrActiveSessionExists is returned by CreateSession and Insert when a
	// running session is already stored.
	ErrActiveSessionExists = errors.New("a running session already exists")

	// ErrNoActiveSession is returned by FinalizeSession when nothing is running.
	ErrNoActiveSession = errors.New("no running session")

	// ErrAmbiguousID is returned by FindByIDPrefix when several IDs share
	// the prefix.
	ErrAmbiguousID = errors.New("id prefix matches more than one session")
)
