package service

import (
	"context"
	"strings"

	"cinema_reservation/model"
	"cinema_reservation/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type SeatService struct {
	db *gorm.DB
}

func NewSeatService(db *gorm.DB) *SeatService {
	return &SeatService{db: db}
}

func (s *SeatService) Create(ctx context.Context, input *model.CreateSeatInput) (*model.Seat, error) {
	var seat model.Seat
	if err := copier.Copy(&seat, input); err != nil {
		return nil, err
	}
	seat.Row = strings.ToUpper(strings.TrimSpace(seat.Row))

	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := uow.Halls.GetByID(ctx, seat.HallId); err != nil {
		return nil, err
	}
	if err := ensureSeatSlotFree(ctx, uow, seat.HallId, seat.Row, seat.Number, 0); err != nil {
		return nil, err
	}
	if err := uow.Seats.Add(ctx, &seat); err != nil {
		return nil, promote(err, ErrSeatTaken)
	}
	if err := uow.Commit(); err != nil {
		return nil, promote(err, ErrSeatTaken)
	}
	return &seat, nil
}

func (s *SeatService) Update(ctx context.Context, id uint, input *model.UpdateSeatInput) (*model.Seat, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	seat, err := uow.Seats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.HallId != nil && *input.HallId != seat.HallId {
		if _, err := uow.Halls.GetByID(ctx, *input.HallId); err != nil {
			return nil, err
		}
		seat.HallId = *input.HallId
	}
	if input.Row != nil {
		seat.Row = strings.ToUpper(strings.TrimSpace(*input.Row))
	}
	if input.Number != nil {
		seat.Number = *input.Number
	}

	if err := ensureSeatSlotFree(ctx, uow, seat.HallId, seat.Row, seat.Number, seat.ID); err != nil {
		return nil, err
	}
	if err := uow.Seats.Update(ctx, seat); err != nil {
		return nil, promote(err, ErrSeatTaken)
	}
	if err := uow.Commit(); err != nil {
		return nil, promote(err, ErrSeatTaken)
	}
	return seat, nil
}

func (s *SeatService) GetByID(ctx context.Context, id uint) (*model.Seat, error) {
	return repository.New[model.Seat, *model.Seat](s.db).GetByID(ctx, id)
}

func (s *SeatService) List(ctx context.Context) ([]model.Seat, error) {
	var seats []model.Seat
	err := s.db.WithContext(ctx).Order("hall_id, row, number").Find(&seats).Error
	return seats, err
}

func (s *SeatService) Delete(ctx context.Context, id uint) (bool, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return false, err
	}
	defer uow.Rollback()

	found, err := uow.Seats.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}
	return found, nil
}
