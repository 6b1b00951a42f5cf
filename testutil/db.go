package testutil

import (
	"os"
	"testing"
	"time"

	"cinema_reservation/database"
	"cinema_reservation/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB connects to the Postgres instance named by
// TEST_DATABASE_DSN, migrates the schema and starts from empty tables.
// Tests needing a real database skip when the variable is unset so the
// pure-logic tests still run anywhere.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping Postgres integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	TruncateAll(t, db)

	return db
}

func TruncateAll(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec(
		`TRUNCATE tickets, showtimes, seats, movies, halls, customers, accounts RESTART IDENTITY CASCADE`,
	).Error
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func SeedHall(t *testing.T, db *gorm.DB, name string, capacity int) *model.Hall {
	t.Helper()
	hall := &model.Hall{Name: name, Capacity: capacity}
	if err := db.Create(hall).Error; err != nil {
		t.Fatalf("seed hall: %v", err)
	}
	return hall
}

func SeedSeat(t *testing.T, db *gorm.DB, hallId uint, row string, number int) *model.Seat {
	t.Helper()
	seat := &model.Seat{HallId: hallId, Row: row, Number: number}
	if err := db.Create(seat).Error; err != nil {
		t.Fatalf("seed seat: %v", err)
	}
	return seat
}

func SeedMovie(t *testing.T, db *gorm.DB, title, slug string) *model.Movie {
	t.Helper()
	movie := &model.Movie{
		Title:           title,
		Slug:            slug,
		DurationMinutes: 120,
		ReleaseDate:     time.Now().AddDate(0, 0, -7),
		Status:          model.MovieNowShowing,
	}
	if err := db.Create(movie).Error; err != nil {
		t.Fatalf("seed movie: %v", err)
	}
	return movie
}

func SeedShowtime(t *testing.T, db *gorm.DB, movieId, hallId uint) *model.Showtime {
	t.Helper()
	showtime := &model.Showtime{
		MovieId:   movieId,
		HallId:    hallId,
		StartTime: time.Now().Add(24 * time.Hour),
		Price:     45,
	}
	if err := db.Create(showtime).Error; err != nil {
		t.Fatalf("seed showtime: %v", err)
	}
	return showtime
}

func SeedCustomer(t *testing.T, db *gorm.DB, name string, phone, email *string) *model.Customer {
	t.Helper()
	customer := &model.Customer{FullName: name, Phone: phone, Email: email}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}
