package database

import (
	"cinema_reservation/model"

	"gorm.io/gorm"
)

// Migrate creates the schema. The unique indexes declared in the model
// tags are the authoritative enforcement of the booking invariants; the
// case-insensitive hall-name index has to be raw SQL because a gorm tag
// cannot express an expression index.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Account{},
		&model.Customer{},
		&model.Hall{},
		&model.Seat{},
		&model.Movie{},
		&model.Showtime{},
		&model.Ticket{},
	)
	if err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_halls_name_lower ON halls (LOWER(name))`,
	).Error
}
