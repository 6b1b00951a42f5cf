package validate

import (
	"cinema_reservation/model"

	"github.com/gofiber/fiber/v2"
)

func CreateSeat() fiber.Handler {
	return parseBody[model.CreateSeatInput]()
}

func UpdateSeat() fiber.Handler {
	return parseBody[model.UpdateSeatInput]()
}
