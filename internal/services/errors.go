package services

import "errors"

// ErrNotFound is returned when a referenced entity does not exist. Handlers
// map it to a 404 before any mutation happens.
var ErrNotFound = errors.New("not found")
