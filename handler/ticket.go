package handler

import (
	"errors"

	"cinema_reservation/constants"
	"cinema_reservation/model"
	"cinema_reservation/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTickets(c *fiber.Ctx) error {
	var filter model.FilterTicketInput
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INTERNAL_ERROR, err)
	}

	result, err := ticketService.List(c.UserContext(), &filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func GetTicket(c *fiber.Ctx) error {
	ticket, err := ticketService.GetByID(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func CreateTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateTicketInput)

	ticket, err := ticketService.Create(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}

func UpdateTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.UpdateTicketInput)

	ticket, err := ticketService.Update(c.UserContext(), inputId(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func DeleteTicket(c *fiber.Ctx) error {
	found, err := ticketService.Delete(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("ticket not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
