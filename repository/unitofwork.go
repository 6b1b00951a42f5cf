package repository

import (
	"context"

	"cinema_reservation/model"

	"gorm.io/gorm"
)

// UnitOfWork binds one repository per entity to a single transaction.
// Writes staged through its repositories become durable together at
// Commit or not at all. One unit of work serves one logical request and
// must never be shared between concurrent requests.
type UnitOfWork struct {
	tx       *gorm.DB
	finished bool

	Accounts  *Repository[model.Account, *model.Account]
	Customers *Repository[model.Customer, *model.Customer]
	Halls     *Repository[model.Hall, *model.Hall]
	Movies    *Repository[model.Movie, *model.Movie]
	Seats     *Repository[model.Seat, *model.Seat]
	Showtimes *Repository[model.Showtime, *model.Showtime]
	Tickets   *Repository[model.Ticket, *model.Ticket]
}

// Begin opens a transaction on db and returns a unit of work bound to it.
func Begin(ctx context.Context, db *gorm.DB) (*UnitOfWork, error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &UnitOfWork{
		tx:        tx,
		Accounts:  newRepository[model.Account, *model.Account](tx, db),
		Customers: newRepository[model.Customer, *model.Customer](tx, db),
		Halls:     newRepository[model.Hall, *model.Hall](tx, db),
		Movies:    newRepository[model.Movie, *model.Movie](tx, db),
		Seats:     newRepository[model.Seat, *model.Seat](tx, db),
		Showtimes: newRepository[model.Showtime, *model.Showtime](tx, db),
		Tickets:   newRepository[model.Ticket, *model.Ticket](tx, db),
	}, nil
}

// Commit applies every staged change atomically. A unique or reference
// constraint rejected by Postgres inside the commit scope surfaces as
// ErrConstraintViolation; the workflow layer promotes it to the domain
// conflict the pre-check would have raised.
func (u *UnitOfWork) Commit() error {
	if u.finished {
		return nil
	}
	u.finished = true
	return translate(u.tx.Commit().Error)
}

// Rollback discards all staged changes. Safe to defer: it is a no-op
// once Commit has run.
func (u *UnitOfWork) Rollback() {
	if u.finished {
		return
	}
	u.finished = true
	u.tx.Rollback()
}
