package validate

import (
	"cinema_reservation/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return parseBody[model.LoginInput]()
}
