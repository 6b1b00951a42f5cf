package service

import (
	"context"

	"cinema_reservation/model"
	"cinema_reservation/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type ShowtimeService struct {
	db *gorm.DB
}

func NewShowtimeService(db *gorm.DB) *ShowtimeService {
	return &ShowtimeService{db: db}
}

func (s *ShowtimeService) Create(ctx context.Context, input *model.CreateShowtimeInput) (*model.Showtime, error) {
	var showtime model.Showtime
	if err := copier.Copy(&showtime, input); err != nil {
		return nil, err
	}

	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := uow.Movies.GetByID(ctx, showtime.MovieId); err != nil {
		return nil, err
	}
	if _, err := uow.Halls.GetByID(ctx, showtime.HallId); err != nil {
		return nil, err
	}

	if err := uow.Showtimes.Add(ctx, &showtime); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (s *ShowtimeService) Update(ctx context.Context, id uint, input *model.UpdateShowtimeInput) (*model.Showtime, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	showtime, err := uow.Showtimes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MovieId != nil && *input.MovieId != showtime.MovieId {
		if _, err := uow.Movies.GetByID(ctx, *input.MovieId); err != nil {
			return nil, err
		}
		showtime.MovieId = *input.MovieId
	}
	if input.HallId != nil && *input.HallId != showtime.HallId {
		if _, err := uow.Halls.GetByID(ctx, *input.HallId); err != nil {
			return nil, err
		}
		showtime.HallId = *input.HallId
	}
	if input.StartTime != nil {
		showtime.StartTime = *input.StartTime
	}
	if input.Price != nil {
		showtime.Price = *input.Price
	}

	if err := uow.Showtimes.Update(ctx, showtime); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return showtime, nil
}

func (s *ShowtimeService) GetByID(ctx context.Context, id uint) (*model.Showtime, error) {
	return repository.New[model.Showtime, *model.Showtime](s.db).GetByID(ctx, id)
}

func (s *ShowtimeService) List(ctx context.Context) ([]model.Showtime, error) {
	var showtimes []model.Showtime
	err := s.db.WithContext(ctx).Order("start_time, id").Find(&showtimes).Error
	return showtimes, err
}

// ListTickets returns the tickets sold for one showtime.
func (s *ShowtimeService) ListTickets(ctx context.Context, showtimeId uint) ([]model.Ticket, error) {
	if _, err := repository.New[model.Showtime, *model.Showtime](s.db).GetByID(ctx, showtimeId); err != nil {
		return nil, err
	}
	return repository.New[model.Ticket, *model.Ticket](s.db).
		FindAll(ctx, "showtime_id = ?", showtimeId)
}

func (s *ShowtimeService) Delete(ctx context.Context, id uint) (bool, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return false, err
	}
	defer uow.Rollback()

	found, err := uow.Showtimes.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}
	return found, nil
}
