package validate

import (
	"cinema_reservation/model"

	"github.com/gofiber/fiber/v2"
)

func CreateCustomer() fiber.Handler {
	return parseBody[model.CreateCustomerInput]()
}

func UpdateCustomer() fiber.Handler {
	return parseBody[model.UpdateCustomerInput]()
}
