package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema_reservation/model"
	"cinema_reservation/repository"
	"cinema_reservation/utils"

	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type MovieService struct {
	db *gorm.DB
}

func NewMovieService(db *gorm.DB) *MovieService {
	return &MovieService{db: db}
}

// uniqueSlug appends -2, -3, ... until the slug is free. excludeId lets
// an update keep its own slug.
func uniqueSlug(ctx context.Context, movies *repository.Repository[model.Movie, *model.Movie], base string, excludeId uint) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		taken, err := movies.Any(ctx, "slug = ? AND id <> ?", candidate, excludeId)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func movieStatusFor(releaseDate time.Time, now time.Time) string {
	if releaseDate.After(now) {
		return model.MovieComingSoon
	}
	return model.MovieNowShowing
}

func (s *MovieService) Create(ctx context.Context, input *model.CreateMovieInput) (*model.Movie, error) {
	var movie model.Movie
	if err := copier.Copy(&movie, input); err != nil {
		return nil, err
	}
	movie.Title = strings.TrimSpace(movie.Title)
	movie.Genre = utils.StringPtr(strings.TrimSpace(input.Genre))
	movie.Status = movieStatusFor(movie.ReleaseDate, time.Now())

	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	movie.Slug, err = uniqueSlug(ctx, uow.Movies.Snapshot(), slug.Make(movie.Title), 0)
	if err != nil {
		return nil, err
	}

	if err := uow.Movies.Add(ctx, &movie); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *MovieService) Update(ctx context.Context, id uint, input *model.UpdateMovieInput) (*model.Movie, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	movie, err := uow.Movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		movie.Title = strings.TrimSpace(*input.Title)
		movie.Slug, err = uniqueSlug(ctx, uow.Movies.Snapshot(), slug.Make(movie.Title), movie.ID)
		if err != nil {
			return nil, err
		}
	}
	if input.Genre != nil {
		movie.Genre = utils.StringPtr(strings.TrimSpace(*input.Genre))
	}
	if input.DurationMinutes != nil {
		movie.DurationMinutes = *input.DurationMinutes
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = *input.ReleaseDate
		movie.Status = movieStatusFor(movie.ReleaseDate, time.Now())
	}

	if err := uow.Movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) GetByID(ctx context.Context, id uint) (*model.Movie, error) {
	return repository.New[model.Movie, *model.Movie](s.db).GetByID(ctx, id)
}

func (s *MovieService) GetBySlug(ctx context.Context, movieSlug string) (*model.Movie, error) {
	return repository.New[model.Movie, *model.Movie](s.db).Find(ctx, "slug = ?", movieSlug)
}

func (s *MovieService) List(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	err := s.db.WithContext(ctx).Order("release_date DESC, id").Find(&movies).Error
	return movies, err
}

func (s *MovieService) Delete(ctx context.Context, id uint) (bool, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return false, err
	}
	defer uow.Rollback()

	found, err := uow.Movies.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}
	return found, nil
}
