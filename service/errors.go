package service

import "errors"

// Domain conflicts raised by the reservation guard. Each one can come
// from the fast pre-check or be promoted from a commit-time constraint
// violation; callers cannot tell the difference and should not care.
var (
	ErrSeatAlreadyReserved = errors.New("seat is already reserved for this showtime")
	ErrDuplicateContact    = errors.New("phone or email is already used by another customer")
	ErrHallNameTaken       = errors.New("a hall with this name already exists")
	ErrSeatTaken           = errors.New("a seat with the same hall/row/number already exists")
)

// ErrSeatNotInHall rejects booking a seat that belongs to a different
// hall than the showtime plays in.
var ErrSeatNotInHall = errors.New("seat does not belong to the showtime hall")
