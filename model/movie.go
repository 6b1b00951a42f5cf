package model

import "time"

const (
	MovieComingSoon = "COMING_SOON"
	MovieNowShowing = "NOW_SHOWING"
)

type Movie struct {
	DTO
	Title           string    `gorm:"size:150;not null" json:"title"`
	Slug            string    `gorm:"size:170;uniqueIndex" json:"slug"`
	Genre           *string   `gorm:"size:50" json:"genre"`
	DurationMinutes int       `gorm:"not null" json:"durationMinutes"`
	ReleaseDate     time.Time `gorm:"not null" json:"releaseDate"`
	Status          string    `gorm:"size:20;not null;default:'COMING_SOON'" json:"status"`
}

type CreateMovieInput struct {
	Title           string    `validate:"required,max=150" json:"title"`
	Genre           string    `validate:"omitempty,max=50" json:"genre"`
	DurationMinutes int       `validate:"required,min=1" json:"durationMinutes"`
	ReleaseDate     time.Time `validate:"required" json:"releaseDate"`
}

type UpdateMovieInput struct {
	Title           *string    `validate:"omitempty,max=150" json:"title"`
	Genre           *string    `validate:"omitempty,max=50" json:"genre"`
	DurationMinutes *int       `validate:"omitempty,min=1" json:"durationMinutes"`
	ReleaseDate     *time.Time `json:"releaseDate"`
}
