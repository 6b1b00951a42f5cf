package router

import (
	"time"

	"cinema_reservation/handler"
	"cinema_reservation/middleware"
	"cinema_reservation/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", middleware.RateLimit(10, time.Minute), validate.Login(), handler.Login)
	auth.Get("/me", middleware.Protected(), handler.Me)

	customer := v1.Group("/customer", middleware.Protected())
	customer.Get("/", handler.GetCustomers)
	customer.Get("/find-by-phone", handler.FindCustomerByPhone)
	customer.Get("/find-by-email", handler.FindCustomerByEmail)
	customer.Get("/:customerId", validate.GetById("customerId"), handler.GetCustomer)
	customer.Post("/", validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", validate.GetById("customerId"), validate.UpdateCustomer(), handler.UpdateCustomer)
	customer.Delete("/:customerId", validate.GetById("customerId"), handler.DeleteCustomer)

	hall := v1.Group("/hall", middleware.Protected())
	hall.Get("/", handler.GetHalls)
	hall.Get("/find-by-name", handler.FindHallByName)
	hall.Get("/:hallId", validate.GetById("hallId"), handler.GetHall)
	hall.Get("/:hallId/seats", validate.GetById("hallId"), handler.GetHallSeats)
	hall.Post("/", validate.CreateHall(), handler.CreateHall)
	hall.Put("/:hallId", validate.GetById("hallId"), validate.UpdateHall(), handler.UpdateHall)
	hall.Delete("/:hallId", validate.GetById("hallId"), handler.DeleteHall)

	seat := v1.Group("/seat", middleware.Protected())
	seat.Get("/", handler.GetSeats)
	seat.Get("/:seatId", validate.GetById("seatId"), handler.GetSeat)
	seat.Post("/", validate.CreateSeat(), handler.CreateSeat)
	seat.Put("/:seatId", validate.GetById("seatId"), validate.UpdateSeat(), handler.UpdateSeat)
	seat.Delete("/:seatId", validate.GetById("seatId"), handler.DeleteSeat)

	movie := v1.Group("/movie", middleware.Protected())
	movie.Get("/", handler.GetMovies)
	movie.Get("/slug/:slug", handler.GetMovieBySlug)
	movie.Get("/:movieId", validate.GetById("movieId"), handler.GetMovie)
	movie.Post("/", validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", validate.GetById("movieId"), validate.UpdateMovie(), handler.UpdateMovie)
	movie.Delete("/:movieId", validate.GetById("movieId"), handler.DeleteMovie)

	showtime := v1.Group("/showtime", middleware.Protected())
	showtime.Get("/", handler.GetShowtimes)
	showtime.Get("/:showtimeId", validate.GetById("showtimeId"), handler.GetShowtime)
	showtime.Get("/:showtimeId/tickets", validate.GetById("showtimeId"), handler.GetShowtimeTickets)
	showtime.Post("/", validate.CreateShowtime(), handler.CreateShowtime)
	showtime.Put("/:showtimeId", validate.GetById("showtimeId"), validate.UpdateShowtime(), handler.UpdateShowtime)
	showtime.Delete("/:showtimeId", validate.GetById("showtimeId"), handler.DeleteShowtime)

	ticket := v1.Group("/ticket", middleware.Protected(), middleware.RateLimit(60, time.Minute))
	ticket.Get("/", handler.GetTickets)
	ticket.Get("/:ticketId", validate.GetById("ticketId"), handler.GetTicket)
	ticket.Post("/", validate.CreateTicket(), handler.CreateTicket)
	ticket.Put("/:ticketId", validate.GetById("ticketId"), validate.UpdateTicket(), handler.UpdateTicket)
	ticket.Delete("/:ticketId", validate.GetById("ticketId"), handler.DeleteTicket)
}
