package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"cinema_reservation/model"
	"cinema_reservation/repository"
	"cinema_reservation/service"
	"cinema_reservation/testutil"
	"cinema_reservation/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type bookingFixture struct {
	hall     *model.Hall
	seatA1   *model.Seat
	seatA2   *model.Seat
	showtime *model.Showtime
	evening  *model.Showtime
	customer *model.Customer
}

func newBookingFixture(t *testing.T, db *gorm.DB) bookingFixture {
	t.Helper()
	hall := testutil.SeedHall(t, db, "Hall 1", 50)
	movie := testutil.SeedMovie(t, db, "Dune Part Two", "dune-part-two")
	return bookingFixture{
		hall:     hall,
		seatA1:   testutil.SeedSeat(t, db, hall.ID, "A", 1),
		seatA2:   testutil.SeedSeat(t, db, hall.ID, "A", 2),
		showtime: testutil.SeedShowtime(t, db, movie.ID, hall.ID),
		evening:  testutil.SeedShowtime(t, db, movie.ID, hall.ID),
		customer: testutil.SeedCustomer(t, db, "Omar", utils.Ptr("+971501234567"), nil),
	}
}

func TestCreateTicketRoundTrip(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	fx := newBookingFixture(t, db)
	tickets := service.NewTicketService(db)

	created, err := tickets.Create(ctx, &model.CreateTicketInput{
		ShowtimeId: fx.showtime.ID,
		SeatId:     fx.seatA1.ID,
		CustomerId: fx.customer.ID,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.TicketCode, "TKT-"))
	assert.False(t, created.PurchasedAt.IsZero())

	loaded, err := tickets.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.seatA1.ID, loaded.SeatId)

	moved, err := tickets.Update(ctx, created.ID, &model.UpdateTicketInput{SeatId: &fx.seatA2.ID})
	require.NoError(t, err)
	assert.Equal(t, fx.seatA2.ID, moved.SeatId)

	found, err := tickets.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
}

// Same seat, same showtime: second booking must fail. The same seat for
// a different showtime is a different slot and stays bookable.
func TestCreateTicketSeatConflict(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	fx := newBookingFixture(t, db)
	tickets := service.NewTicketService(db)

	_, err := tickets.Create(ctx, &model.CreateTicketInput{
		ShowtimeId: fx.showtime.ID, SeatId: fx.seatA1.ID, CustomerId: fx.customer.ID,
	})
	require.NoError(t, err)

	_, err = tickets.Create(ctx, &model.CreateTicketInput{
		ShowtimeId: fx.showtime.ID, SeatId: fx.seatA1.ID, CustomerId: fx.customer.ID,
	})
	assert.ErrorIs(t, err, service.ErrSeatAlreadyReserved)

	_, err = tickets.Create(ctx, &model.CreateTicketInput{
		ShowtimeId: fx.evening.ID, SeatId: fx.seatA1.ID, CustomerId: fx.customer.ID,
	})
	assert.NoError(t, err)
}

// Racing bookings for one seat: the unique index arbitrates and exactly
// one request wins regardless of how the pre-checks interleave.
func TestConcurrentBookingOneWinner(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	fx := newBookingFixture(t, db)
	tickets := service.NewTicketService(db)

	const racers = 8
	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = tickets.Create(ctx, &model.CreateTicketInput{
				ShowtimeId: fx.showtime.ID, SeatId: fx.seatA1.ID, CustomerId: fx.customer.ID,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, service.ErrSeatAlreadyReserved)
	}
	assert.Equal(t, 1, wins, "exactly one booking must succeed")

	var count int64
	require.NoError(t, db.Model(&model.Ticket{}).
		Where("showtime_id = ? AND seat_id = ?", fx.showtime.ID, fx.seatA1.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// A stale handle updating a ticket someone else cancelled must fail
// with a concurrency conflict, not resurrect the row.
func TestUpdateConcurrentlyDeletedTicket(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	fx := newBookingFixture(t, db)
	tickets := service.NewTicketService(db)

	created, err := tickets.Create(ctx, &model.CreateTicketInput{
		ShowtimeId: fx.showtime.ID, SeatId: fx.seatA1.ID, CustomerId: fx.customer.ID,
	})
	require.NoError(t, err)

	stale, err := repository.New[model.Ticket, *model.Ticket](db).GetByID(ctx, created.ID)
	require.NoError(t, err)

	found, err := tickets.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)

	uow, err := repository.Begin(ctx, db)
	require.NoError(t, err)
	defer uow.Rollback()

	stale.SeatId = fx.seatA2.ID
	err = uow.Tickets.Update(ctx, stale)
	assert.ErrorIs(t, err, repository.ErrConcurrencyConflict)
}

func TestCreateTicketDanglingReferences(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	fx := newBookingFixture(t, db)
	tickets := service.NewTicketService(db)

	_, err := tickets.Create(ctx, &model.CreateTicketInput{
		ShowtimeId: 9999, SeatId: fx.seatA1.ID, CustomerId: fx.customer.ID,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = tickets.Create(ctx, &model.CreateTicketInput{
		ShowtimeId: fx.showtime.ID, SeatId: fx.seatA1.ID, CustomerId: 9999,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateTicketSeatFromOtherHall(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	fx := newBookingFixture(t, db)
	tickets := service.NewTicketService(db)

	otherHall := testutil.SeedHall(t, db, "Hall 2", 30)
	straySeat := testutil.SeedSeat(t, db, otherHall.ID, "B", 1)

	_, err := tickets.Create(ctx, &model.CreateTicketInput{
		ShowtimeId: fx.showtime.ID, SeatId: straySeat.ID, CustomerId: fx.customer.ID,
	})
	assert.ErrorIs(t, err, service.ErrSeatNotInHall)
}
