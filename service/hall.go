package service

import (
	"context"
	"strings"

	"cinema_reservation/model"
	"cinema_reservation/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type HallService struct {
	db *gorm.DB
}

func NewHallService(db *gorm.DB) *HallService {
	return &HallService{db: db}
}

func (s *HallService) Create(ctx context.Context, input *model.CreateHallInput) (*model.Hall, error) {
	var hall model.Hall
	if err := copier.Copy(&hall, input); err != nil {
		return nil, err
	}
	hall.Name = strings.TrimSpace(hall.Name)

	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := ensureHallNameFree(ctx, uow, hall.Name, 0); err != nil {
		return nil, err
	}
	if err := uow.Halls.Add(ctx, &hall); err != nil {
		return nil, promote(err, ErrHallNameTaken)
	}
	if err := uow.Commit(); err != nil {
		return nil, promote(err, ErrHallNameTaken)
	}
	return &hall, nil
}

func (s *HallService) Update(ctx context.Context, id uint, input *model.UpdateHallInput) (*model.Hall, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	hall, err := uow.Halls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		hall.Name = strings.TrimSpace(*input.Name)
	}
	if input.Capacity != nil {
		hall.Capacity = *input.Capacity
	}

	if err := ensureHallNameFree(ctx, uow, hall.Name, hall.ID); err != nil {
		return nil, err
	}
	if err := uow.Halls.Update(ctx, hall); err != nil {
		return nil, promote(err, ErrHallNameTaken)
	}
	if err := uow.Commit(); err != nil {
		return nil, promote(err, ErrHallNameTaken)
	}
	return hall, nil
}

func (s *HallService) GetByID(ctx context.Context, id uint) (*model.Hall, error) {
	return repository.New[model.Hall, *model.Hall](s.db).GetByID(ctx, id)
}

// FindByName matches case-insensitively, mirroring the uniqueness rule.
func (s *HallService) FindByName(ctx context.Context, name string) (*model.Hall, error) {
	return repository.New[model.Hall, *model.Hall](s.db).
		Find(ctx, "LOWER(name) = LOWER(?)", strings.TrimSpace(name))
}

func (s *HallService) List(ctx context.Context) ([]model.Hall, error) {
	return repository.New[model.Hall, *model.Hall](s.db).GetAll(ctx)
}

// ListSeats returns the seats of one hall in walking order.
func (s *HallService) ListSeats(ctx context.Context, hallId uint) ([]model.Seat, error) {
	if _, err := repository.New[model.Hall, *model.Hall](s.db).GetByID(ctx, hallId); err != nil {
		return nil, err
	}
	var seats []model.Seat
	err := s.db.WithContext(ctx).
		Where("hall_id = ?", hallId).
		Order("row, number").
		Find(&seats).Error
	return seats, err
}

func (s *HallService) Delete(ctx context.Context, id uint) (bool, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return false, err
	}
	defer uow.Rollback()

	found, err := uow.Halls.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}
	return found, nil
}
