package validate

import (
	"cinema_reservation/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket() fiber.Handler {
	return parseBody[model.CreateTicketInput]()
}

func UpdateTicket() fiber.Handler {
	return parseBody[model.UpdateTicketInput]()
}
