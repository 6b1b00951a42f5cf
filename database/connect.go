package database

import (
	"fmt"
	"strconv"

	"cinema_reservation/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the shared Postgres handle, runs migrations and
// seeds. TranslateError is required: the repository layer branches on
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated to recognize
// constraint violations.
func ConnectDB() {
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		panic(err)
	}
	fmt.Println("Database Migrated")

	SeedData(DB)
}
