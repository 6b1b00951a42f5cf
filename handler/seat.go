package handler

import (
	"errors"

	"cinema_reservation/constants"
	"cinema_reservation/model"
	"cinema_reservation/utils"

	"github.com/gofiber/fiber/v2"
)

func GetSeats(c *fiber.Ctx) error {
	seats, err := seatService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seats)
}

func GetSeat(c *fiber.Ctx) error {
	seat, err := seatService.GetByID(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

func CreateSeat(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateSeatInput)

	seat, err := seatService.Create(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, seat)
}

func UpdateSeat(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.UpdateSeatInput)

	seat, err := seatService.Update(c.UserContext(), inputId(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

func DeleteSeat(c *fiber.Ctx) error {
	found, err := seatService.Delete(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("seat not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
