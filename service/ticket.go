package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"cinema_reservation/model"
	"cinema_reservation/repository"
	"cinema_reservation/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketService struct {
	db *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db}
}

// generateTicketCode returns a code like TKT-9F2A41C8D03B76E5. Codes
// carry their own unique index; a collision on the 64-bit tail would
// surface as ErrConstraintViolation, which in practice never happens.
func generateTicketCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TKT-" + raw[:16]
}

// Create books a seat for a showtime. The snapshot pre-check rejects
// most double bookings cheaply; under a true race both inserts reach
// Postgres and the (showtime_id, seat_id) unique index lets exactly one
// commit. The loser's constraint violation is promoted to
// ErrSeatAlreadyReserved so both outcomes look identical to the caller.
func (s *TicketService) Create(ctx context.Context, input *model.CreateTicketInput) (*model.Ticket, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	showtime, err := uow.Showtimes.GetByID(ctx, input.ShowtimeId)
	if err != nil {
		return nil, err
	}
	seat, err := uow.Seats.GetByID(ctx, input.SeatId)
	if err != nil {
		return nil, err
	}
	if seat.HallId != showtime.HallId {
		return nil, ErrSeatNotInHall
	}
	customer, err := uow.Customers.GetByID(ctx, input.CustomerId)
	if err != nil {
		return nil, err
	}

	if err := ensureSeatFree(ctx, uow, input.ShowtimeId, input.SeatId, 0); err != nil {
		return nil, err
	}

	ticket := model.Ticket{
		ShowtimeId:  input.ShowtimeId,
		SeatId:      input.SeatId,
		CustomerId:  input.CustomerId,
		PurchasedAt: input.PurchasedAt,
		TicketCode:  generateTicketCode(),
	}
	if ticket.PurchasedAt.IsZero() {
		ticket.PurchasedAt = time.Now()
	}

	if err := uow.Tickets.Add(ctx, &ticket); err != nil {
		return nil, promote(err, ErrSeatAlreadyReserved)
	}
	if err := uow.Commit(); err != nil {
		return nil, promote(err, ErrSeatAlreadyReserved)
	}

	s.sendConfirmation(ctx, &ticket, customer, seat, showtime)
	return &ticket, nil
}

// sendConfirmation fires the booking email after the commit; the
// reservation stands even if rendering or delivery fails.
func (s *TicketService) sendConfirmation(ctx context.Context, ticket *model.Ticket, customer *model.Customer, seat *model.Seat, showtime *model.Showtime) {
	if customer.Email == nil {
		return
	}

	movie, err := repository.New[model.Movie, *model.Movie](s.db).GetByID(ctx, showtime.MovieId)
	if err != nil {
		log.Printf("ticket %s: load movie for confirmation: %v", ticket.TicketCode, err)
		return
	}
	hall, err := repository.New[model.Hall, *model.Hall](s.db).GetByID(ctx, showtime.HallId)
	if err != nil {
		log.Printf("ticket %s: load hall for confirmation: %v", ticket.TicketCode, err)
		return
	}

	qrPNG, err := utils.GenerateQRCode(ticket.TicketCode, 256)
	if err != nil {
		log.Printf("ticket %s: render qr: %v", ticket.TicketCode, err)
		qrPNG = nil
	}

	utils.SendTicketConfirmationEmail(*customer.Email, utils.TicketConfirmationData{
		CustomerName: customer.FullName,
		MovieTitle:   movie.Title,
		HallName:     hall.Name,
		SeatLabel:    seat.Row + strconv.Itoa(seat.Number),
		Showtime:     showtime.StartTime.Format("Mon, 02 Jan 2006 15:04"),
		TicketCode:   ticket.TicketCode,
	}, qrPNG)
}

// Update moves a ticket to another seat, showtime or customer. The
// version check on the row makes a concurrent cancellation surface as
// ErrConcurrencyConflict rather than silently resurrecting the ticket.
func (s *TicketService) Update(ctx context.Context, id uint, input *model.UpdateTicketInput) (*model.Ticket, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	ticket, err := uow.Tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ShowtimeId != nil {
		ticket.ShowtimeId = *input.ShowtimeId
	}
	if input.SeatId != nil {
		ticket.SeatId = *input.SeatId
	}
	if input.CustomerId != nil && *input.CustomerId != ticket.CustomerId {
		if _, err := uow.Customers.GetByID(ctx, *input.CustomerId); err != nil {
			return nil, err
		}
		ticket.CustomerId = *input.CustomerId
	}
	if input.PurchasedAt != nil {
		ticket.PurchasedAt = *input.PurchasedAt
	}

	showtime, err := uow.Showtimes.GetByID(ctx, ticket.ShowtimeId)
	if err != nil {
		return nil, err
	}
	seat, err := uow.Seats.GetByID(ctx, ticket.SeatId)
	if err != nil {
		return nil, err
	}
	if seat.HallId != showtime.HallId {
		return nil, ErrSeatNotInHall
	}

	if err := ensureSeatFree(ctx, uow, ticket.ShowtimeId, ticket.SeatId, ticket.ID); err != nil {
		return nil, err
	}
	if err := uow.Tickets.Update(ctx, ticket); err != nil {
		return nil, promote(err, ErrSeatAlreadyReserved)
	}
	if err := uow.Commit(); err != nil {
		return nil, promote(err, ErrSeatAlreadyReserved)
	}
	return ticket, nil
}

func (s *TicketService) GetByID(ctx context.Context, id uint) (*model.Ticket, error) {
	return repository.New[model.Ticket, *model.Ticket](s.db).GetByID(ctx, id)
}

func (s *TicketService) List(ctx context.Context, filter *model.FilterTicketInput) (*model.ResponseCustom, error) {
	query := s.db.WithContext(ctx).Model(&model.Ticket{})
	if filter.ShowtimeId > 0 {
		query = query.Where("showtime_id = ?", filter.ShowtimeId)
	}
	if filter.CustomerId > 0 {
		query = query.Where("customer_id = ?", filter.CustomerId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var tickets []model.Ticket
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("id").Find(&tickets).Error; err != nil {
		return nil, err
	}

	return &model.ResponseCustom{
		Rows:       tickets,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}, nil
}

// Delete cancels a booking and frees the seat for the showtime.
func (s *TicketService) Delete(ctx context.Context, id uint) (bool, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return false, err
	}
	defer uow.Rollback()

	found, err := uow.Tickets.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}
	return found, nil
}
