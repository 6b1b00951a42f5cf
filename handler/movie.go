package handler

import (
	"errors"

	"cinema_reservation/constants"
	"cinema_reservation/model"
	"cinema_reservation/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMovies(c *fiber.Ctx) error {
	movies, err := movieService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

func GetMovie(c *fiber.Ctx) error {
	movie, err := movieService.GetByID(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func GetMovieBySlug(c *fiber.Ctx) error {
	movie, err := movieService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func CreateMovie(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateMovieInput)

	movie, err := movieService.Create(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

func UpdateMovie(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.UpdateMovieInput)

	movie, err := movieService.Update(c.UserContext(), inputId(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovie(c *fiber.Ctx) error {
	found, err := movieService.Delete(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("movie not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
