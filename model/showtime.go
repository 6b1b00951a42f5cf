package model

import "time"

type Showtime struct {
	DTO
	MovieId   uint      `gorm:"not null" json:"movieId"`
	HallId    uint      `gorm:"not null" json:"hallId"`
	StartTime time.Time `gorm:"not null" json:"startTime"`
	Price     float64   `gorm:"not null" json:"price"`
	Movie     Movie     `gorm:"foreignKey:MovieId" json:"-"`
	Hall      Hall      `gorm:"foreignKey:HallId" json:"-"`
	Tickets   []Ticket  `gorm:"foreignKey:ShowtimeId" json:"-"`
}

type CreateShowtimeInput struct {
	MovieId   uint      `validate:"required,gt=0" json:"movieId"`
	HallId    uint      `validate:"required,gt=0" json:"hallId"`
	StartTime time.Time `validate:"required" json:"startTime"`
	Price     float64   `validate:"gte=0" json:"price"`
}

type UpdateShowtimeInput struct {
	MovieId   *uint      `validate:"omitempty,gt=0" json:"movieId"`
	HallId    *uint      `validate:"omitempty,gt=0" json:"hallId"`
	StartTime *time.Time `json:"startTime"`
	Price     *float64   `validate:"omitempty,gte=0" json:"price"`
}
