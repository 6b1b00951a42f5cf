package handler

import (
	"errors"

	"cinema_reservation/constants"
	"cinema_reservation/model"
	"cinema_reservation/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCustomers(c *fiber.Ctx) error {
	var filter model.FilterCustomer
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INTERNAL_ERROR, err)
	}

	result, err := customerService.List(c.UserContext(), &filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func GetCustomer(c *fiber.Ctx) error {
	customer, err := customerService.GetByID(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func FindCustomerByPhone(c *fiber.Ctx) error {
	phone := c.Query("phone")
	if phone == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PHONE, errors.New("phone query param required"))
	}

	customer, err := customerService.FindByPhone(c.UserContext(), phone)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func FindCustomerByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOT_FOUND, errors.New("email query param required"))
	}

	customer, err := customerService.FindByEmail(c.UserContext(), email)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateCustomerInput)

	customer, err := customerService.Create(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, customer)
}

func UpdateCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.UpdateCustomerInput)

	customer, err := customerService.Update(c.UserContext(), inputId(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func DeleteCustomer(c *fiber.Ctx) error {
	found, err := customerService.Delete(c.UserContext(), inputId(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("customer not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
