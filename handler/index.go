package handler

import (
	"errors"

	"cinema_reservation/constants"
	"cinema_reservation/repository"
	"cinema_reservation/service"
	"cinema_reservation/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	customerService *service.CustomerService
	hallService     *service.HallService
	seatService     *service.SeatService
	movieService    *service.MovieService
	showtimeService *service.ShowtimeService
	ticketService   *service.TicketService
)

// Init wires the handlers to one database handle. Must run before the
// router is mounted.
func Init(db *gorm.DB) {
	customerService = service.NewCustomerService(db)
	hallService = service.NewHallService(db)
	seatService = service.NewSeatService(db)
	movieService = service.NewMovieService(db)
	showtimeService = service.NewShowtimeService(db)
	ticketService = service.NewTicketService(db)
}

func inputId(c *fiber.Ctx) uint {
	return uint(c.Locals("inputId").(int))
}

// respondServiceError maps workflow errors onto HTTP statuses. Domain
// conflicts keep distinguishing message keys so clients can react
// without parsing error strings.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	case errors.Is(err, service.ErrSeatAlreadyReserved):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_ALREADY_RESERVED, err)
	case errors.Is(err, service.ErrDuplicateContact):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_CONTACT, err)
	case errors.Is(err, service.ErrHallNameTaken):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.HALL_NAME_TAKEN, err)
	case errors.Is(err, service.ErrSeatTaken):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_TAKEN, err)
	case errors.Is(err, service.ErrSeatNotInHall):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SEAT_NOT_IN_HALL, err)
	case errors.Is(err, utils.ErrInvalidPhone):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PHONE, err)
	case errors.Is(err, repository.ErrConcurrencyConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CONCURRENCY_CONFLICT, err)
	case errors.Is(err, repository.ErrConstraintViolation):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CONSTRAINT_VIOLATION, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}
