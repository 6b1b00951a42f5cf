package database

import (
	"log"

	"cinema_reservation/config"
	"cinema_reservation/constants"
	"cinema_reservation/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData makes sure an admin account exists so the API is reachable
// on a fresh database.
func SeedData(db *gorm.DB) {
	password := config.ConfigDefault("ADMIN_PASSWORD", "admin123")
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "admin", Password: string(bytes), Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}
}
