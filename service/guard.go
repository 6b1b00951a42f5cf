package service

import (
	"context"
	"errors"

	"cinema_reservation/repository"
)

// The guard pre-checks below run against snapshot repositories, so they
// see only committed state and are never perturbed by writes staged in
// the same unit of work. They exist to fail fast: two racing requests
// can both pass a pre-check, and only the unique indexes checked inside
// Commit decide the winner. promote closes that gap by mapping the
// commit-time constraint violation to the same conflict the pre-check
// would have raised.

func ensureSeatFree(ctx context.Context, uow *repository.UnitOfWork, showtimeId, seatId, excludeId uint) error {
	taken, err := uow.Tickets.Snapshot().Any(ctx,
		"showtime_id = ? AND seat_id = ? AND id <> ?", showtimeId, seatId, excludeId)
	if err != nil {
		return err
	}
	if taken {
		return ErrSeatAlreadyReserved
	}
	return nil
}

func ensureContactFree(ctx context.Context, uow *repository.UnitOfWork, phone, email *string, excludeId uint) error {
	if phone != nil {
		used, err := uow.Customers.Snapshot().Any(ctx, "phone = ? AND id <> ?", *phone, excludeId)
		if err != nil {
			return err
		}
		if used {
			return ErrDuplicateContact
		}
	}
	if email != nil {
		used, err := uow.Customers.Snapshot().Any(ctx, "email = ? AND id <> ?", *email, excludeId)
		if err != nil {
			return err
		}
		if used {
			return ErrDuplicateContact
		}
	}
	return nil
}

func ensureHallNameFree(ctx context.Context, uow *repository.UnitOfWork, name string, excludeId uint) error {
	taken, err := uow.Halls.Snapshot().Any(ctx, "LOWER(name) = LOWER(?) AND id <> ?", name, excludeId)
	if err != nil {
		return err
	}
	if taken {
		return ErrHallNameTaken
	}
	return nil
}

func ensureSeatSlotFree(ctx context.Context, uow *repository.UnitOfWork, hallId uint, row string, number int, excludeId uint) error {
	taken, err := uow.Seats.Snapshot().Any(ctx,
		"hall_id = ? AND row = ? AND number = ? AND id <> ?", hallId, row, number, excludeId)
	if err != nil {
		return err
	}
	if taken {
		return ErrSeatTaken
	}
	return nil
}

// promote translates the storage-level constraint backstop into the
// domain conflict. Everything else, including ErrConcurrencyConflict,
// passes through unchanged.
func promote(err, conflict error) error {
	if errors.Is(err, repository.ErrConstraintViolation) {
		return conflict
	}
	return err
}
