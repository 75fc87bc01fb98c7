package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the store never connected or the connection
// was not established at startup. Callers decide whether this degrades
// gracefully (contact submission, chat logging) or surfaces an error.
var ErrUnavailable = errors.New("store not connected")
