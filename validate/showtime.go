package validate

import (
	"cinema_reservation/model"

	"github.com/gofiber/fiber/v2"
)

func CreateShowtime() fiber.Handler {
	return parseBody[model.CreateShowtimeInput]()
}

func UpdateShowtime() fiber.Handler {
	return parseBody[model.UpdateShowtimeInput]()
}
