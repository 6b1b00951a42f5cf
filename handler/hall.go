package handler

import (
	"errors"

	"cinema_reservation/constants"
	"cinema_reservation/model"
	"cinema_reservation/utils"

	"github.com/gofiber/fiber/v2"
)

func GetHalls(c *fiber.Ctx) error {
	halls, err := hallService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, halls)
}

func GetHall(c *fiber.Ctx) error {
	hall, err := hallService.GetByID(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

func FindHallByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOT_FOUND, errors.New("name query param required"))
	}

	hall, err := hallService.FindByName(c.UserContext(), name)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

func GetHallSeats(c *fiber.Ctx) error {
	seats, err := hallService.ListSeats(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seats)
}

func CreateHall(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateHallInput)

	hall, err := hallService.Create(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, hall)
}

func UpdateHall(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.UpdateHallInput)

	hall, err := hallService.Update(c.UserContext(), inputId(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

func DeleteHall(c *fiber.Ctx) error {
	found, err := hallService.Delete(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("hall not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
