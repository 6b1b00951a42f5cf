package validate

import (
	"cinema_reservation/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMovie() fiber.Handler {
	return parseBody[model.CreateMovieInput]()
}

func UpdateMovie() fiber.Handler {
	return parseBody[model.UpdateMovieInput]()
}
