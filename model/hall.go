package model

// Hall names are unique case-insensitively; the LOWER(name) index is
// created in database.Migrate since a gorm tag cannot express it.
type Hall struct {
	DTO
	Name     string `gorm:"size:50;not null" json:"name"`
	Capacity int    `gorm:"not null" json:"capacity"`
	Seats    []Seat `gorm:"foreignKey:HallId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"seats,omitempty"`
}

type CreateHallInput struct {
	Name     string `validate:"required,max=50" json:"name"`
	Capacity int    `validate:"required,min=1" json:"capacity"`
}

type UpdateHallInput struct {
	Name     *string `validate:"omitempty,max=50" json:"name"`
	Capacity *int    `validate:"omitempty,min=1" json:"capacity"`
}
