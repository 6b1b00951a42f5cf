package validate

import (
	"cinema_reservation/model"

	"github.com/gofiber/fiber/v2"
)

func CreateHall() fiber.Handler {
	return parseBody[model.CreateHallInput]()
}

func UpdateHall() fiber.Handler {
	return parseBody[model.UpdateHallInput]()
}
