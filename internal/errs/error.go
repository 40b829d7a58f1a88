package errs

import (
	"errors"
)

var (
	// ErrNotFound means the entity addressed by the request does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means an id or unique-field collision with an existing record.
	ErrConflict = errors.New("already exists")
	// ErrBadReference means a referenced entity (user, publication, author,
	// category) does not exist.
	ErrBadReference = errors.New("referenced entity does not exist")
	// ErrUnavailable means the publication has no available instance to lend.
	ErrUnavailable = errors.New("no available instance")
	// ErrCopyAvailable rejects a reservation while a copy can be rented directly.
	ErrCopyAvailable = errors.New("available instance exists, rent it instead")
	// ErrReservationPriority blocks a rental while the head of the reservation
	// queue belongs to another user.
	ErrReservationPriority = errors.New("earlier reservation has priority")
	// ErrTxMaxRetries is returned when a serializable transaction keeps losing
	// to concurrent writers.
	ErrTxMaxRetries = errors.New("transaction retry limit exceeded")
)
