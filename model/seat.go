package model

type Seat struct {
	DTO
	HallId uint   `gorm:"not null;uniqueIndex:idx_seats_hall_row_number" json:"hallId"`
	Row    string `gorm:"size:10;not null;uniqueIndex:idx_seats_hall_row_number" json:"row"` // e.g. "A", "B"
	Number int    `gorm:"not null;uniqueIndex:idx_seats_hall_row_number" json:"number"`
	Hall   Hall   `gorm:"foreignKey:HallId" json:"-"`
}

type CreateSeatInput struct {
	HallId uint   `validate:"required,gt=0" json:"hallId"`
	Row    string `validate:"required,max=10" json:"row"`
	Number int    `validate:"required,min=1" json:"number"`
}

type UpdateSeatInput struct {
	HallId *uint   `validate:"omitempty,gt=0" json:"hallId"`
	Row    *string `validate:"omitempty,max=10" json:"row"`
	Number *int    `validate:"omitempty,min=1" json:"number"`
}
