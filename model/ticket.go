package model

import "time"

// Ticket carries the core reservation invariant: the composite unique
// index on (showtime_id, seat_id) means a seat is sold at most once per
// showtime, no matter how requests interleave.
type Ticket struct {
	DTO
	ShowtimeId  uint      `gorm:"not null;uniqueIndex:idx_tickets_showtime_seat" json:"showtimeId"`
	SeatId      uint      `gorm:"not null;uniqueIndex:idx_tickets_showtime_seat" json:"seatId"`
	CustomerId  uint      `gorm:"not null" json:"customerId"`
	PurchasedAt time.Time `gorm:"not null" json:"purchasedAt"`
	TicketCode  string    `gorm:"size:20;uniqueIndex" json:"ticketCode"`
	Showtime    Showtime  `gorm:"foreignKey:ShowtimeId" json:"-"`
	Seat        Seat      `gorm:"foreignKey:SeatId" json:"-"`
	Customer    Customer  `gorm:"foreignKey:CustomerId" json:"-"`
}

type CreateTicketInput struct {
	ShowtimeId  uint      `validate:"required,gt=0" json:"showtimeId"`
	SeatId      uint      `validate:"required,gt=0" json:"seatId"`
	CustomerId  uint      `validate:"required,gt=0" json:"customerId"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

type UpdateTicketInput struct {
	ShowtimeId  *uint      `validate:"omitempty,gt=0" json:"showtimeId"`
	SeatId      *uint      `validate:"omitempty,gt=0" json:"seatId"`
	CustomerId  *uint      `validate:"omitempty,gt=0" json:"customerId"`
	PurchasedAt *time.Time `json:"purchasedAt"`
}

type FilterTicketInput struct {
	Pagination
	ShowtimeId uint `json:"showtimeId" validate:"omitempty,gt=0"`
	CustomerId uint `json:"customerId" validate:"omitempty,gt=0"`
}
