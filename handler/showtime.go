package handler

import (
	"errors"

	"cinema_reservation/constants"
	"cinema_reservation/model"
	"cinema_reservation/utils"

	"github.com/gofiber/fiber/v2"
)

func GetShowtimes(c *fiber.Ctx) error {
	showtimes, err := showtimeService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, showtimes)
}

func GetShowtime(c *fiber.Ctx) error {
	showtime, err := showtimeService.GetByID(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func GetShowtimeTickets(c *fiber.Ctx) error {
	tickets, err := showtimeService.ListTickets(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tickets)
}

func CreateShowtime(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateShowtimeInput)

	showtime, err := showtimeService.Create(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, showtime)
}

func UpdateShowtime(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.UpdateShowtimeInput)

	showtime, err := showtimeService.Update(c.UserContext(), inputId(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func DeleteShowtime(c *fiber.Ctx) error {
	found, err := showtimeService.Delete(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("showtime not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
